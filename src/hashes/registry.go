// Package hashes maps hash-function names to implementations. The
// built-in functions are registered statically; additional ones can be
// loaded from hashlib<N>.so plugins found in a plugin directory.
package hashes

import (
	"errors"
	"fmt"

	"github.com/glaciate/snowflake/src"
)

// MaxDigestLen bounds every digest the engine will handle. Callers
// size scratch buffers with it.
const MaxDigestLen = 64

// Func computes the digest of a 32-bit seed. It must write the digest
// into scratch (len(scratch) >= MaxDigestLen) and return
// scratch[:digestLen]. Implementations must be pure and reentrant.
type Func func(seed uint32, scratch []byte) []byte

type Entry struct {
	Name      string
	Fn        Func
	DigestLen int
}

var ErrUnknownHash = errors.New("unknown hash function")

type Registry struct {
	entries []Entry
	log     src.Logger
}

func NewRegistry(log src.Logger) *Registry {
	r := &Registry{log: log}
	r.entries = append(r.entries, builtins...)

	return r
}

var builtins = []Entry{
	{Name: "wikihash", Fn: wikihash, DigestLen: wikihashLen},
	{Name: "mtrand", Fn: mtrand, DigestLen: mtrandLen},
}

func (r *Registry) Register(e Entry) error {
	if e.Name == "" || e.Fn == nil {
		return fmt.Errorf("hash entry %+v is incomplete", e)
	}

	if e.DigestLen < 1 || e.DigestLen > MaxDigestLen {
		return fmt.Errorf(
			"hash %q: digest length %d out of range [1, %d]",
			e.Name, e.DigestLen, MaxDigestLen,
		)
	}

	r.entries = append(r.entries, e)

	return nil
}

// Resolve returns the first entry registered under name, so built-ins
// win over plugins and earlier plugins win over later ones.
func (r *Registry) Resolve(name string) (Func, int, error) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Fn, e.DigestLen, nil
		}
	}

	return nil, 0, fmt.Errorf("%q: %w", name, ErrUnknownHash)
}
