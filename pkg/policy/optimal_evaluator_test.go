package policy_test

import (
	"testing"

	"github.com/pagesim/pagesim/pkg/policy"
	"github.com/pagesim/pagesim/pkg/random"
	"github.com/stretchr/testify/require"
)

func TestOptimalEvaluator(t *testing.T) {
	evaluator := policy.NewOptimalEvaluator[uint32]()

	t.Run("FurthestNextUseWins", func(t *testing.T) {
		// Hand trace at capacity 2, evicting the resident page
		// whose next access lies furthest ahead:
		//
		//   1 miss {1}, 2 miss {1,2},
		//   3 miss: next(1)=3 < next(2)=4, evict 2 -> {1,3},
		//   1 hit,
		//   2 miss: next(1)=6 < next(3)=8, evict 3 -> {1,2},
		//   4 miss: next(1)=6 < next(2)=7, evict 2 -> {1,4},
		//   1 hit,
		//   2 miss: neither 1 nor 4 recurs, evict 1 -> {2,4},
		//   3 miss.
		//
		// No assignment of eviction choices does better: at
		// most one of the two accesses to page 1 and one of the
		// later accesses to page 2 can hit.
		hits, err := evaluator.Evaluate([]uint32{1, 2, 3, 1, 2, 4, 1, 2, 3}, 2)
		require.NoError(t, err)
		require.Equal(t, 2, hits)
	})

	t.Run("NeverRecurringPageEvictedFirst", func(t *testing.T) {
		// Page 2 never recurs, so admitting page 3 must evict
		// it rather than page 1. Both later accesses hit.
		hits, err := evaluator.Evaluate([]uint32{1, 2, 3, 1, 3}, 2)
		require.NoError(t, err)
		require.Equal(t, 2, hits)
	})

	t.Run("RecurringPageOutlivesStalePages", func(t *testing.T) {
		// Pages 1 and 7 stop recurring after index 3; page 5
		// keeps coming back and must survive both evictions.
		hits, err := evaluator.Evaluate([]uint32{5, 7, 5, 7, 1, 2, 5}, 2)
		require.NoError(t, err)
		require.Equal(t, 3, hits)
	})

	t.Run("DominatesEveryOtherPolicy", func(t *testing.T) {
		// Belady's policy is provably optimal, so on any
		// workload its hit count bounds the others from above.
		generator := random.NewSeededSingleThreadedGenerator(0xbe1ad)
		workload := make([]uint32, 0, 1000)
		for i := 0; i < 1000; i++ {
			workload = append(workload, uint32(generator.IntN(60)))
		}
		for _, capacity := range []int{1, 8, 25} {
			optimalHits, err := evaluator.Evaluate(workload, capacity)
			require.NoError(t, err)
			for name, other := range allEvaluators() {
				otherHits, err := other.Evaluate(workload, capacity)
				require.NoError(t, err)
				require.LessOrEqual(t, otherHits, optimalHits, "policy %s, capacity %d", name, capacity)
			}
		}
	})
}
