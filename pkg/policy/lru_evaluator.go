package policy

import (
	"cmp"
)

type lruEvaluator[T cmp.Ordered] struct{}

// NewLRUEvaluator creates an evaluator for the Least Recently Used
// (LRU) page replacement policy. Every resident page carries the
// logical time of its last access; the page with the oldest last
// access is evicted.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#Least_recently_used_(LRU)
func NewLRUEvaluator[T cmp.Ordered]() Evaluator[T] {
	return lruEvaluator[T]{}
}

func (lruEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	lastAccess := make(map[T]int, capacity)
	hits := 0
	for now, page := range workload {
		if _, ok := lastAccess[page]; ok {
			hits++
			lastAccess[page] = now
			continue
		}
		if capacity == 0 {
			continue
		}
		lastAccess[page] = now
		if len(lastAccess) > capacity {
			// A miss overflows the working set by at most
			// one entry, so a single eviction restores the
			// capacity invariant. Last access times are
			// unique, leaving no tie to break.
			var victim T
			victimTime := now
			for residentPage, accessTime := range lastAccess {
				if accessTime < victimTime {
					victim = residentPage
					victimTime = accessTime
				}
			}
			delete(lastAccess, victim)
		}
	}
	return hits, nil
}
