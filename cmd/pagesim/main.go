package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pagesim/pagesim/pkg/policy"
	"github.com/pagesim/pagesim/pkg/random"
	"github.com/pagesim/pagesim/pkg/util"
	"github.com/pagesim/pagesim/pkg/workload"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pagesim replays one or more page access workloads against a set of
// page replacement policies at one or more cache capacities, and
// reports the number of page cache hits for every combination.
//
// Workloads are either generated (non-local, 80-20, repeating scan) or
// replayed from traces saved by earlier runs. When a seed is
// configured, both workload generation and the random replacement
// policy are fully deterministic, so results can be reproduced.

type applicationConfiguration struct {
	// Seed from which workload generation and the random
	// replacement policy derive their random streams. When absent,
	// every run is seeded randomly.
	Seed *uint64 `json:"seed"`
	// Capacities of the simulated page cache, in pages.
	Capacities []int `json:"capacities"`
	// Page replacement policies to evaluate, using the names
	// accepted by policy.NewEvaluatorFromConfiguration.
	Policies []string `json:"policies"`
	// Workloads to replay against every policy.
	Workloads []workload.Configuration `json:"workloads"`
	// Directory in which generated workloads are saved as
	// "<name>.trace" files. Traces are not saved when empty.
	TraceDirectory string `json:"traceDirectory"`
}

// Increment of the SplitMix64 sequence. Sub-seeds derived from the
// configured seed are spaced out by this constant, so that every
// workload and every evaluation run draws from an unrelated part of
// the generator's sequence space.
const splitMix64Increment = 0x9e3779b97f4a7c15

type simulationRun struct {
	workloadName string
	pages        []workload.Page
	capacity     int
	policy       string
	evaluator    policy.Evaluator[workload.Page]
	hits         int
}

func main() {
	if err := mainInternal(); err != nil {
		log.Fatal(err)
	}
}

func mainInternal() error {
	if len(os.Args) != 2 {
		return status.Error(codes.InvalidArgument, "Usage: pagesim pagesim.jsonnet")
	}
	var configuration applicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
		return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
	}
	if len(configuration.Workloads) == 0 || len(configuration.Capacities) == 0 || len(configuration.Policies) == 0 {
		return status.Error(codes.InvalidArgument, "Configuration must provide at least one workload, capacity and policy")
	}

	// Every consumer of randomness gets its own generator, created
	// through this factory. Stream numbers are handed out once per
	// consumer, keeping seeded runs reproducible even though
	// evaluations execute concurrently.
	stream := uint64(0)
	nextGeneratorFactory := func() func() random.SingleThreadedGenerator {
		seed := configuration.Seed
		currentStream := stream
		stream++
		if seed == nil {
			return random.NewFastSingleThreadedGenerator
		}
		return func() random.SingleThreadedGenerator {
			return random.NewSeededSingleThreadedGenerator(*seed + currentStream*splitMix64Increment)
		}
	}

	// Build all workloads up front, so that misconfigurations are
	// reported before any evaluation starts.
	workloads := make([][]workload.Page, 0, len(configuration.Workloads))
	for i := range configuration.Workloads {
		workloadConfiguration := &configuration.Workloads[i]
		pages, err := workload.NewPagesFromConfiguration(workloadConfiguration, nextGeneratorFactory()())
		if err != nil {
			return util.StatusWrapf(err, "Failed to build workload %#v", workloadConfiguration.Name)
		}
		if configuration.TraceDirectory != "" && workloadConfiguration.Shape != "TRACE" {
			path := filepath.Join(configuration.TraceDirectory, workloadConfiguration.Name+".trace")
			if err := workload.SaveTrace(path, &workload.Trace{
				Name:  workloadConfiguration.Name,
				Pages: pages,
			}); err != nil {
				return util.StatusWrapf(err, "Failed to save trace of workload %#v", workloadConfiguration.Name)
			}
		}
		workloads = append(workloads, pages)
	}

	runs := make([]simulationRun, 0, len(workloads)*len(configuration.Capacities)*len(configuration.Policies))
	for i, pages := range workloads {
		for _, capacity := range configuration.Capacities {
			for _, policyName := range configuration.Policies {
				evaluator, err := policy.NewEvaluatorFromConfiguration[workload.Page](policyName, nextGeneratorFactory())
				if err != nil {
					return util.StatusWrapf(err, "Failed to create evaluator for policy %#v", policyName)
				}
				runs = append(runs, simulationRun{
					workloadName: configuration.Workloads[i].Name,
					pages:        pages,
					capacity:     capacity,
					policy:       policyName,
					evaluator:    policy.NewMetricsEvaluator(evaluator, policyName),
				})
			}
		}
	}

	// Runs are independent pure computations over a shared
	// read-only workload, so they may all execute at once.
	group := errgroup.Group{}
	for i := range runs {
		run := &runs[i]
		group.Go(func() error {
			hits, err := run.evaluator.Evaluate(run.pages, run.capacity)
			if err != nil {
				return util.StatusWrapf(err, "Failed to evaluate policy %#v against workload %#v at capacity %d", run.policy, run.workloadName, run.capacity)
			}
			run.hits = hits
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKLOAD\tCAPACITY\tPOLICY\tACCESSES\tHITS\tHIT RATE")
	for _, run := range runs {
		hitRate := 0.0
		if len(run.pages) > 0 {
			hitRate = float64(run.hits) / float64(len(run.pages))
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%.2f%%\n", run.workloadName, run.capacity, run.policy, len(run.pages), run.hits, hitRate*100)
	}
	return w.Flush()
}
