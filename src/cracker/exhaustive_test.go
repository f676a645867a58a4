package cracker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glaciate/snowflake/src/hashes"
)

func TestPartition(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 4, 7, 8, 16, 33} {
		rs := partition(workers)
		require.Len(t, rs, workers)

		assert.Equal(t, uint64(0), rs[0].lo, "workers=%d", workers)
		assert.Equal(t, uint64(maxSeed), rs[workers-1].hi, "workers=%d", workers)

		for i := 0; i < workers; i++ {
			assert.LessOrEqual(t, rs[i].lo, rs[i].hi, "workers=%d range=%d", workers, i)

			if i > 0 {
				// adjacency: no gap, no overlap
				assert.Equal(t, rs[i-1].hi+1, rs[i].lo, "workers=%d range=%d", workers, i)
			}
		}
	}
}

func TestScanRange(t *testing.T) {
	t.Run("FindsPlantedSeed", func(t *testing.T) {
		var (
			found atomic.Bool
			seed  atomic.Uint32
		)

		scratch := make([]byte, hashes.MaxDigestLen)
		target := append([]byte(nil), mulHash(0xDEADBEEF, scratch)...)

		scanRange(mulHash, target, seedRange{lo: 0xDEADB000, hi: 0xDEADFFFF}, &found, &seed)

		require.True(t, found.Load())
		assert.Equal(t, uint32(0xDEADBEEF), seed.Load())
	})

	t.Run("ExhaustsWithoutMatch", func(t *testing.T) {
		var (
			found atomic.Bool
			seed  atomic.Uint32
		)

		scratch := make([]byte, hashes.MaxDigestLen)
		target := append([]byte(nil), mulHash(5000, scratch)...)

		scanRange(mulHash, target, seedRange{lo: 0, hi: 1000}, &found, &seed)

		assert.False(t, found.Load())
		assert.Zero(t, seed.Load())
	})

	t.Run("StopsOnForeignHit", func(t *testing.T) {
		var (
			found atomic.Bool
			seed  atomic.Uint32
		)
		found.Store(true)

		scratch := make([]byte, hashes.MaxDigestLen)
		target := append([]byte(nil), mulHash(5, scratch)...)

		// the full space would take forever; the flag must cut the
		// scan short after the first probe
		scanRange(mulHash, target, seedRange{lo: 0, hi: maxSeed}, &found, &seed)

		assert.Zero(t, seed.Load())
	})
}

func TestExhaustive(t *testing.T) {
	// every seed hashes to the target, so each worker hits
	// immediately; this exercises the pool, the flags and the join
	constHash := func(_ uint32, scratch []byte) []byte {
		copy(scratch, "ffff")
		return scratch[:4]
	}

	seed, ok, err := Exhaustive(constHash, []byte("ffff"), 4)
	require.NoError(t, err)
	require.True(t, ok)

	scratch := make([]byte, hashes.MaxDigestLen)
	assert.Equal(t, []byte("ffff"), constHash(seed, scratch))
}
