package workload

import (
	"github.com/pagesim/pagesim/pkg/random"
	"github.com/pagesim/pagesim/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration describes how a single workload should be obtained, as
// listed in the driver's configuration file.
type Configuration struct {
	// Name under which results for this workload are reported.
	Name string `json:"name"`
	// Shape of the access sequence: "NON_LOCAL", "EIGHTY_TWENTY",
	// "REPEATING_SCAN" or "TRACE".
	Shape string `json:"shape"`
	// Number of accesses to generate (NON_LOCAL, EIGHTY_TWENTY).
	Length int `json:"length"`
	// Total number of distinct pages (NON_LOCAL, EIGHTY_TWENTY).
	PageCount int `json:"pageCount"`
	// Number of pages making up the hot set (EIGHTY_TWENTY).
	HotPageCount int `json:"hotPageCount"`
	// Number of pages per scan (REPEATING_SCAN).
	ScanLength int `json:"scanLength"`
	// Number of times the scan is replayed (REPEATING_SCAN).
	Repetitions int `json:"repetitions"`
	// Path of a previously saved trace to replay (TRACE).
	TracePath string `json:"tracePath"`
}

// NewPagesFromConfiguration obtains the access sequence described by
// the provided configuration, either by generating it or by loading a
// previously saved trace.
func NewPagesFromConfiguration(configuration *Configuration, generator random.SingleThreadedGenerator) ([]Page, error) {
	switch configuration.Shape {
	case "NON_LOCAL":
		if configuration.Length < 0 || configuration.PageCount <= 0 {
			return nil, status.Error(codes.InvalidArgument, "Non-local workloads require a non-negative length and a positive page count")
		}
		return NewNonLocal(generator, configuration.Length, configuration.PageCount), nil
	case "EIGHTY_TWENTY":
		if configuration.Length < 0 || configuration.HotPageCount <= 0 || configuration.PageCount <= configuration.HotPageCount {
			return nil, status.Error(codes.InvalidArgument, "80-20 workloads require a non-negative length and a page count exceeding a positive hot page count")
		}
		return NewEightyTwenty(generator, configuration.Length, configuration.HotPageCount, configuration.PageCount), nil
	case "REPEATING_SCAN":
		if configuration.ScanLength <= 0 || configuration.Repetitions <= 0 {
			return nil, status.Error(codes.InvalidArgument, "Repeating scan workloads require a positive scan length and repetition count")
		}
		return NewRepeatingScan(configuration.ScanLength, configuration.Repetitions), nil
	case "TRACE":
		trace, err := LoadTrace(configuration.TracePath)
		if err != nil {
			return nil, util.StatusWrapf(err, "Failed to load trace from %#v", configuration.TracePath)
		}
		return trace.Pages, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown workload shape: %#v", configuration.Shape)
	}
}
