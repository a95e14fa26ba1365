package policy

import (
	"cmp"
	"slices"
)

type fifoEvaluator[T cmp.Ordered] struct{}

// NewFIFOEvaluator creates an evaluator for the First In First Out
// (FIFO) page replacement policy. Pages are evicted in arrival order:
// a miss overwrites the slot at the head of a circular queue, while a
// hit leaves the queue untouched.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#First_in_first_out_(FIFO)
func NewFIFOEvaluator[T cmp.Ordered]() Evaluator[T] {
	return fifoEvaluator[T]{}
}

func (fifoEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	slots := make([]T, 0, capacity)
	head := 0
	hits := 0
	for _, page := range workload {
		if slices.Contains(slots, page) {
			// Accessing a resident page does not refresh its
			// position in the queue.
			hits++
			continue
		}
		if capacity == 0 {
			continue
		}
		if len(slots) < capacity {
			// While filling up, the head always points at
			// the first empty slot.
			slots = append(slots, page)
		} else {
			slots[head] = page
		}
		head = (head + 1) % capacity
	}
	return hits, nil
}
