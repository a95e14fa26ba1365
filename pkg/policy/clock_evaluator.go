package policy

import (
	"cmp"
	"slices"
)

type clockEntry[T cmp.Ordered] struct {
	page   T
	useBit bool
}

type clockEvaluator[T cmp.Ordered] struct{}

// NewClockEvaluator creates an evaluator for the Clock (second chance)
// page replacement policy, an approximation of LRU. Resident pages sit
// on a ring, each with a use bit that is set on access. On eviction a
// hand sweeps the ring, clearing set use bits and stopping at the
// first entry whose bit is already clear. The hand keeps its position
// between misses.
//
// https://en.wikipedia.org/wiki/Page_replacement_algorithm#Clock
func NewClockEvaluator[T cmp.Ordered]() Evaluator[T] {
	return clockEvaluator[T]{}
}

func (clockEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	entries := make([]clockEntry[T], 0, capacity)
	hand := 0
	hits := 0
	for _, page := range workload {
		if i := slices.IndexFunc(entries, func(entry clockEntry[T]) bool {
			return entry.page == page
		}); i >= 0 {
			hits++
			entries[i].useBit = true
			continue
		}
		if capacity == 0 {
			continue
		}
		if len(entries) < capacity {
			entries = append(entries, clockEntry[T]{
				page:   page,
				useBit: true,
			})
			continue
		}

		// Recently used entries get a second chance: their use
		// bit is cleared and the hand moves on. A full
		// revolution clears every bit, so the sweep always
		// terminates.
		for entries[hand].useBit {
			entries[hand].useBit = false
			hand = (hand + 1) % capacity
		}
		entries[hand] = clockEntry[T]{
			page:   page,
			useBit: true,
		}
		hand = (hand + 1) % capacity
	}
	return hits, nil
}
