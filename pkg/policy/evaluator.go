package policy

import (
	"cmp"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Evaluator replays a sequence of page accesses against a bounded
// working set managed by a single page replacement policy, returning
// the number of accesses that found their page already resident.
//
// Evaluators hold no state of their own across calls: every call to
// Evaluate creates a fresh working set and discards it on return. The
// workload is only read, never modified. A single Evaluator may
// therefore be used from multiple goroutines at once.
type Evaluator[T cmp.Ordered] interface {
	// Evaluate processes every access in the workload in order and
	// returns the resulting cache hit count. The working set never
	// holds more than capacity distinct pages. A capacity of zero
	// is valid and causes every access to miss; a negative
	// capacity is rejected.
	Evaluate(workload []T, capacity int) (int, error)
}

func validateCapacity(capacity int) error {
	if capacity < 0 {
		return status.Errorf(codes.InvalidArgument, "Capacity is negative: %d", capacity)
	}
	return nil
}
