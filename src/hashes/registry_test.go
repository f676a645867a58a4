package hashes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRegistry() *Registry {
	return NewRegistry(zap.NewNop().Sugar())
}

func TestRegistryResolve(t *testing.T) {
	r := testRegistry()

	t.Run("Builtins", func(t *testing.T) {
		fn, n, err := r.Resolve("wikihash")
		require.NoError(t, err)
		require.NotNil(t, fn)
		assert.Equal(t, 16, n)

		fn, n, err = r.Resolve("mtrand")
		require.NoError(t, err)
		require.NotNil(t, fn)
		assert.Equal(t, 16, n)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := r.Resolve("sha0")
		assert.ErrorIs(t, err, ErrUnknownHash)
	})
}

func TestRegistryRegister(t *testing.T) {
	dummy := func(_ uint32, scratch []byte) []byte { return scratch[:4] }

	t.Run("DigestLenBounds", func(t *testing.T) {
		r := testRegistry()

		assert.Error(t, r.Register(Entry{Name: "zero", Fn: dummy, DigestLen: 0}))
		assert.Error(t, r.Register(Entry{Name: "huge", Fn: dummy, DigestLen: MaxDigestLen + 1}))
		assert.NoError(t, r.Register(Entry{Name: "edge", Fn: dummy, DigestLen: MaxDigestLen}))
	})

	t.Run("IncompleteEntry", func(t *testing.T) {
		r := testRegistry()

		assert.Error(t, r.Register(Entry{Name: "", Fn: dummy, DigestLen: 4}))
		assert.Error(t, r.Register(Entry{Name: "nofn", DigestLen: 4}))
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		r := testRegistry()
		require.NoError(t, r.Register(Entry{Name: "wikihash", Fn: dummy, DigestLen: 4}))

		_, n, err := r.Resolve("wikihash")
		require.NoError(t, err)
		assert.Equal(t, 16, n)
	})
}

func TestLoadPluginsMissing(t *testing.T) {
	r := testRegistry()
	r.LoadPlugins(t.TempDir())

	_, _, err := r.Resolve("wikihash")
	assert.NoError(t, err)

	_, _, err = r.Resolve("fromplugin")
	assert.ErrorIs(t, err, ErrUnknownHash)
}
