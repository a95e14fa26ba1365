package policy_test

import (
	"testing"

	"github.com/pagesim/pagesim/pkg/policy"
	"github.com/pagesim/pagesim/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestRandomEvaluator(t *testing.T) {
	t.Run("DeterministicWithSeed", func(t *testing.T) {
		generator := random.NewSeededSingleThreadedGenerator(0xfeed)
		workload := make([]uint32, 0, 2000)
		for i := 0; i < 2000; i++ {
			workload = append(workload, uint32(generator.IntN(100)))
		}

		evaluator := policy.NewRandomEvaluator[uint32](seededGeneratorFactory(99))
		first, err := evaluator.Evaluate(workload, 10)
		require.NoError(t, err)
		second, err := evaluator.Evaluate(workload, 10)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("SingleSlotLeavesNoChoice", func(t *testing.T) {
		// With one slot there is only one possible victim, so
		// the outcome is independent of the random stream.
		evaluator := policy.NewRandomEvaluator[uint32](seededGeneratorFactory(7))
		hits, err := evaluator.Evaluate([]uint32{1, 1, 2, 2, 1, 1}, 1)
		require.NoError(t, err)
		require.Equal(t, 3, hits)
	})

	t.Run("HitLeavesResidentSetUntouched", func(t *testing.T) {
		// Repeats of already resident pages never consume
		// random numbers or evict anything: with capacity for
		// all distinct pages, every repeat hits.
		evaluator := policy.NewRandomEvaluator[uint32](seededGeneratorFactory(7))
		hits, err := evaluator.Evaluate([]uint32{3, 4, 3, 4, 3, 4}, 2)
		require.NoError(t, err)
		require.Equal(t, 4, hits)
	})
}
