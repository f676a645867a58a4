package table

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	t.Run("DuplicateEndpoints", func(t *testing.T) {
		s := uint32(42)
		chains := []Chain{{s, 2}, {s, 1}, {s, 3}, {s, 1}}

		Sort(chains)

		ends := []uint32{chains[0].End, chains[1].End, chains[2].End, chains[3].End}
		assert.Equal(t, []uint32{1, 1, 2, 3}, ends)

		idx, ok := SearchEndpoint(chains, 1)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("RandomInvariant", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		chains := make([]Chain, 5000)
		for i := range chains {
			// narrow endpoint range forces plenty of duplicates
			chains[i] = Chain{Start: rng.Uint32(), End: rng.Uint32() % 512}
		}

		want := make([]uint32, len(chains))
		for i, c := range chains {
			want[i] = c.End
		}
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

		Sort(chains)

		for i, c := range chains {
			assert.Equal(t, want[i], c.End, "index %d", i)
		}
	})

	t.Run("AlreadySorted", func(t *testing.T) {
		chains := []Chain{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
		Sort(chains)

		for i := 0; i < len(chains)-1; i++ {
			assert.LessOrEqual(t, chains[i].End, chains[i+1].End)
		}
	})

	t.Run("TinyInputs", func(t *testing.T) {
		Sort(nil)
		Sort([]Chain{{1, 2}})
	})
}

func TestSearchEndpoint(t *testing.T) {
	chains := []Chain{{0, 1}, {0, 1}, {0, 2}, {0, 3}}

	t.Run("FirstOfEquals", func(t *testing.T) {
		idx, ok := SearchEndpoint(chains, 1)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("SingleMatch", func(t *testing.T) {
		idx, ok := SearchEndpoint(chains, 3)
		require.True(t, ok)
		assert.Equal(t, 3, idx)
	})

	t.Run("Misses", func(t *testing.T) {
		_, ok := SearchEndpoint(chains, 0)
		assert.False(t, ok)

		_, ok = SearchEndpoint(chains, 4)
		assert.False(t, ok)

		_, ok = SearchEndpoint(nil, 1)
		assert.False(t, ok)
	})

	t.Run("AllEqual", func(t *testing.T) {
		equal := []Chain{{1, 5}, {2, 5}, {3, 5}}

		idx, ok := SearchEndpoint(equal, 5)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})
}
