// Package table holds the rainbow-table core: chain records, the
// reduction function, chain walking, the on-disk store and the sorter.
package table

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/glaciate/snowflake/src/hashes"
)

// Chain is one precomputed walk through the hash/reduce alternation.
// Only the two ends are kept; everything in between is recomputed on
// demand.
type Chain struct {
	Start uint32
	End   uint32
}

// ChainSize is the record width on disk: two packed uint32s.
const ChainSize = int(unsafe.Sizeof(Chain{}))

const seedWidth = 4

// Reduce compresses a digest to a seed. The leading whole words are
// XOR-folded little endian; the trailing len%4 bytes are added in from
// the tail. The add/XOR asymmetry is load-bearing: tables in the wild
// were built with it, so it cannot be "cleaned up".
func Reduce(digest []byte, round uint32) uint32 {
	var acc uint32

	n := len(digest)
	for i := 0; i+seedWidth <= n; i += seedWidth {
		acc ^= binary.LittleEndian.Uint32(digest[i:])
	}

	for i := 0; i < n%seedWidth; i++ {
		acc += uint32(digest[n-1-i])
	}

	return acc ^ round
}

// Walk runs a chain of length chainLen from start and returns its
// endpoint. scratch must hold at least hashes.MaxDigestLen bytes and
// is clobbered.
func Walk(start, chainLen uint32, fn hashes.Func, scratch []byte) uint32 {
	s := start
	for i := uint32(0); i < chainLen; i++ {
		s = Reduce(fn(s, scratch), i)
	}

	return s
}

// Regenerate rewalks a chain from start, comparing each position's
// digest against target before reducing. On a match the position's
// seed is returned; a chain that never produces target was a false
// positive from a reduction collision.
func Regenerate(start, chainLen uint32, fn hashes.Func, target, scratch []byte) (uint32, bool) {
	s := start
	for i := uint32(0); i < chainLen; i++ {
		d := fn(s, scratch)
		if bytes.Equal(d, target) {
			return s, true
		}

		s = Reduce(d, i)
	}

	return 0, false
}

// Records hit the disk in host layout; chainsFromBytes reinterprets
// the mmap view the same way, so the format round-trips on any single
// host. Cross-endian table portability is intentionally not a goal.
func chainsToBytes(cs []Chain) []byte {
	if len(cs) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&cs[0])), len(cs)*ChainSize)
}

func chainsFromBytes(b []byte) []Chain {
	if len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*Chain)(unsafe.Pointer(&b[0])), len(b)/ChainSize)
}
