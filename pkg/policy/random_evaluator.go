package policy

import (
	"cmp"
	"slices"

	"github.com/pagesim/pagesim/pkg/random"
)

type randomEvaluator[T cmp.Ordered] struct {
	createGenerator func() random.SingleThreadedGenerator
}

// NewRandomEvaluator creates an evaluator for the random page
// replacement policy, which evicts a uniformly chosen resident page on
// every miss at full capacity.
//
// Every call to Evaluate obtains a fresh generator from
// createGenerator. Results are reproducible when the factory returns
// seeded generators, and concurrent evaluations never share a random
// stream.
//
// https://en.wikipedia.org/wiki/Cache_replacement_policies#Random_replacement_(RR)
func NewRandomEvaluator[T cmp.Ordered](createGenerator func() random.SingleThreadedGenerator) Evaluator[T] {
	return randomEvaluator[T]{
		createGenerator: createGenerator,
	}
}

func (e randomEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	generator := e.createGenerator()
	resident := make([]T, 0, capacity)
	hits := 0
	for _, page := range workload {
		if slices.Contains(resident, page) {
			hits++
			continue
		}
		if capacity == 0 {
			continue
		}
		if len(resident) < capacity {
			resident = append(resident, page)
		} else {
			resident[generator.IntN(capacity)] = page
		}
	}
	return hits, nil
}
