package cracker

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants"

	"github.com/glaciate/snowflake/src/hashes"
)

// maxSeed is the top of the 32-bit seed space.
const maxSeed = 0xffffffff

type seedRange struct {
	lo, hi uint64
}

// partition splits [0, maxSeed] into workers contiguous ranges with no
// gaps and no overlaps; the last range absorbs the remainder.
func partition(workers int) []seedRange {
	span := (uint64(maxSeed) + 1) / uint64(workers)

	rs := make([]seedRange, workers)
	for i := range rs {
		lo := uint64(i) * span
		hi := lo + span - 1
		if i == workers-1 {
			hi = maxSeed
		}

		rs[i] = seedRange{lo: lo, hi: hi}
	}

	return rs
}

// scanRange hashes every seed in r against target, stopping early once
// some worker has published a hit.
func scanRange(fn hashes.Func, target []byte, r seedRange, found *atomic.Bool, seed *atomic.Uint32) {
	scratch := make([]byte, hashes.MaxDigestLen)

	for v := r.lo; v <= r.hi; v++ {
		if bytes.Equal(fn(uint32(v), scratch), target) {
			seed.Store(uint32(v))
			found.Store(true)
			return
		}

		if found.Load() {
			return
		}
	}
}

// Exhaustive brute-forces the whole seed space for a seed hashing to
// target, one worker per range. The seed value is only read back after
// every worker has joined, which is what makes the two atomics enough.
func Exhaustive(fn hashes.Func, target []byte, workers int) (uint32, bool, error) {
	if workers < 1 {
		workers = max(1, runtime.NumCPU())
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, false, fmt.Errorf("exhaustive search pool: %w", err)
	}
	defer pool.Release()

	var (
		found atomic.Bool
		seed  atomic.Uint32
		wg    sync.WaitGroup
	)

	for _, r := range partition(workers) {
		wg.Add(1)

		task := func() {
			defer wg.Done()
			scanRange(fn, target, r, &found, &seed)
		}

		if err := pool.Submit(task); err != nil {
			wg.Done()
			return 0, false, fmt.Errorf("exhaustive search submit: %w", err)
		}
	}

	wg.Wait()

	return seed.Load(), found.Load(), nil
}
