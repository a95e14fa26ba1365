package policy_test

import (
	"testing"

	"github.com/pagesim/pagesim/pkg/policy"
	"github.com/pagesim/pagesim/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewEvaluatorFromConfiguration(t *testing.T) {
	t.Run("KnownPolicies", func(t *testing.T) {
		for _, name := range []string{
			"FIRST_IN_FIRST_OUT",
			"OPTIMAL",
			"RANDOM_REPLACEMENT",
			"LEAST_RECENTLY_USED",
			"CLOCK",
		} {
			evaluator, err := policy.NewEvaluatorFromConfiguration[uint32](name, seededGeneratorFactory(1))
			require.NoError(t, err, name)

			hits, err := evaluator.Evaluate([]uint32{8, 8, 8}, 1)
			require.NoError(t, err, name)
			require.Equal(t, 2, hits, name)
		}
	})

	t.Run("UnknownPolicy", func(t *testing.T) {
		_, err := policy.NewEvaluatorFromConfiguration[uint32]("SECOND_CHANCE", nil)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown page replacement policy: \"SECOND_CHANCE\""), err)
	})
}
