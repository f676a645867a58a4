// Package generator produces rainbow chains in parallel and streams
// them into a shared table writer.
package generator

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/glaciate/snowflake/src"
	"github.com/glaciate/snowflake/src/hashes"
	"github.com/glaciate/snowflake/src/pkg/assert"
	"github.com/glaciate/snowflake/src/prng"
	"github.com/glaciate/snowflake/src/table"
)

// workerBufferSize is how many chains a worker accumulates before
// taking the writer lock. One flush per 8192 chains keeps contention
// on the shared file negligible.
const workerBufferSize = 8192

type Pool struct {
	workers int
	log     src.Logger
}

// NewPool sizes the pool to workers goroutines; workers < 1 means one
// per available CPU.
func NewPool(workers int, log src.Logger) *Pool {
	if workers < 1 {
		workers = max(1, runtime.NumCPU())
	}

	return &Pool{workers: workers, log: log}
}

// Generate produces chainNum chains of length chainLen and appends
// them to w. The record order in the file depends on scheduling and is
// unspecified; the sorter runs over it afterwards anyway. Any worker
// failure fails the whole generation.
func (p *Pool) Generate(chainNum, chainLen uint32, fn hashes.Func, w *table.Writer) error {
	assert.Assert(fn != nil, "generate called without a hash function")

	quota := chainNum / uint32(p.workers)

	var g errgroup.Group
	for i := 0; i < p.workers; i++ {
		n := quota
		if i == p.workers-1 {
			n += chainNum % uint32(p.workers)
		}

		g.Go(func() error {
			return produce(n, chainLen, fn, w)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("chain generation: %w", err)
	}

	p.log.Debugf("generated %d chains of length %d on %d workers", chainNum, chainLen, p.workers)

	return nil
}

func produce(quota, chainLen uint32, fn hashes.Func, w *table.Writer) error {
	scratch := make([]byte, hashes.MaxDigestLen)
	buf := make([]table.Chain, 0, workerBufferSize)

	for quota > 0 {
		n := uint32(workerBufferSize)
		if quota < n {
			n = quota
		}

		buf = buf[:0]
		for j := uint32(0); j < n; j++ {
			start := prng.Uint32()
			buf = append(buf, table.Chain{
				Start: start,
				End:   table.Walk(start, chainLen, fn, scratch),
			})
		}

		if err := w.Append(buf); err != nil {
			return err
		}

		quota -= n
	}

	return nil
}
