package policy

import (
	"cmp"
)

type optimalEvaluator[T cmp.Ordered] struct{}

// NewOptimalEvaluator creates an evaluator for Belady's optimal page
// replacement policy. On eviction it selects the resident page whose
// next access lies furthest in the future, preferring pages that are
// never accessed again. This requires knowledge of the full workload
// up front, making the policy unimplementable in a real memory
// manager; it serves as the upper bound when comparing policies.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#B%C3%A9l%C3%A1dy's_algorithm
func NewOptimalEvaluator[T cmp.Ordered]() Evaluator[T] {
	return optimalEvaluator[T]{}
}

func (optimalEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	// For every access, the index of the next access of the same
	// page, or len(workload) if the page never recurs. Built with a
	// single backward pass.
	never := len(workload)
	nextUse := make([]int, len(workload))
	lastSeen := make(map[T]int, len(workload))
	for i := len(workload) - 1; i >= 0; i-- {
		page := workload[i]
		if next, ok := lastSeen[page]; ok {
			nextUse[i] = next
		} else {
			nextUse[i] = never
		}
		lastSeen[page] = i
	}

	// Next access index of every resident page. Every access to a
	// resident page refreshes its entry, so stored indices always
	// lie beyond the position currently being processed.
	resident := make(map[T]int, capacity)
	hits := 0
	for i, page := range workload {
		if _, ok := resident[page]; ok {
			hits++
			resident[page] = nextUse[i]
			continue
		}
		if capacity == 0 {
			continue
		}
		if len(resident) >= capacity {
			// Evict the page with the furthest next use.
			// Distinct pages can only share a next use index
			// when neither recurs; break such ties towards
			// the lowest page identifier.
			var victim T
			victimNextUse := -1
			for residentPage, next := range resident {
				if next > victimNextUse || (next == victimNextUse && residentPage < victim) {
					victim = residentPage
					victimNextUse = next
				}
			}
			delete(resident, victim)
		}
		resident[page] = nextUse[i]
	}
	return hits, nil
}
