package table

import "sort"

// Sort orders chains by endpoint, in place. Plain quicksort with a
// first-element pivot and a single-direction partition; page faults
// dominate comparisons on mmap-backed input, so nothing fancier pays
// off. Recursion depth is bounded by input order only.
func Sort(chains []Chain) {
	if len(chains) < 2 {
		return
	}

	piv := chains[0].End
	l, r := 1, len(chains)

	for l < r {
		if chains[l].End <= piv {
			l++
		} else {
			r--
			chains[l], chains[r] = chains[r], chains[l]
		}
	}

	l--
	chains[l], chains[0] = chains[0], chains[l]

	Sort(chains[:l])
	Sort(chains[r:])
}

// SearchEndpoint returns the lowest index holding end, so every chain
// sharing that endpoint can be enumerated with a forward scan.
func SearchEndpoint(chains []Chain, end uint32) (int, bool) {
	i := sort.Search(len(chains), func(i int) bool { return chains[i].End >= end })
	if i == len(chains) || chains[i].End != end {
		return 0, false
	}

	return i, true
}
