// Package cracker recovers PRNG seeds from observed digests, either by
// walking precomputed rainbow tables or by brute force.
package cracker

import (
	"github.com/glaciate/snowflake/src/hashes"
	"github.com/glaciate/snowflake/src/table"
)

// Lookup searches a sorted table for the seed behind target. The
// digest could sit at any position of an unknown chain, so each
// position is tried from the last column backwards: walk the target
// forward to the endpoint column, find that endpoint in the table and
// regenerate every chain sharing it. Regeneration is what separates a
// real hit from a reduction collision.
func Lookup(chains []table.Chain, chainLen uint32, fn hashes.Func, target []byte) (uint32, bool) {
	scratch := make([]byte, hashes.MaxDigestLen)

	for j := int(chainLen) - 1; j >= 0; j-- {
		digest := target
		for i := j; i < int(chainLen)-1; i++ {
			digest = fn(table.Reduce(digest, uint32(i)), scratch)
		}

		r := table.Reduce(digest, chainLen-1)

		idx, ok := table.SearchEndpoint(chains, r)
		if !ok {
			continue
		}

		// Endpoints are not unique; every chain ending in r is a
		// candidate, and any of them may hold the target.
		for ; idx < len(chains) && chains[idx].End == r; idx++ {
			if seed, ok := table.Regenerate(chains[idx].Start, chainLen, fn, target, scratch); ok {
				return seed, true
			}
		}
	}

	return 0, false
}
