package policy

import (
	"cmp"

	"github.com/pagesim/pagesim/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewEvaluatorFromConfiguration creates an evaluator for the page
// replacement policy named in a configuration file. The generator
// factory is only used by policies that make randomized eviction
// decisions.
func NewEvaluatorFromConfiguration[T cmp.Ordered](policy string, createGenerator func() random.SingleThreadedGenerator) (Evaluator[T], error) {
	switch policy {
	case "FIRST_IN_FIRST_OUT":
		return NewFIFOEvaluator[T](), nil
	case "OPTIMAL":
		return NewOptimalEvaluator[T](), nil
	case "RANDOM_REPLACEMENT":
		return NewRandomEvaluator[T](createGenerator), nil
	case "LEAST_RECENTLY_USED":
		return NewLRUEvaluator[T](), nil
	case "CLOCK":
		return NewClockEvaluator[T](), nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown page replacement policy: %#v", policy)
	}
}
