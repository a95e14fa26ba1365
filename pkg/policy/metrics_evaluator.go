package policy

import (
	"cmp"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	evaluatorAccessesPrometheusMetrics sync.Once

	evaluatorAccessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagesim",
			Subsystem: "policy",
			Name:      "evaluator_accesses_total",
			Help:      "Total number of page accesses processed by evaluators, partitioned by outcome.",
		},
		[]string{"policy", "outcome"})
)

type metricsEvaluator[T cmp.Ordered] struct {
	base Evaluator[T]

	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewMetricsEvaluator is a decorator for Evaluator that exposes the
// number of page cache hits and misses observed by the underlying
// Evaluator through Prometheus.
func NewMetricsEvaluator[T cmp.Ordered](base Evaluator[T], name string) Evaluator[T] {
	evaluatorAccessesPrometheusMetrics.Do(func() {
		prometheus.MustRegister(evaluatorAccessesTotal)
	})

	return &metricsEvaluator[T]{
		base: base,

		hits:   evaluatorAccessesTotal.WithLabelValues(name, "Hit"),
		misses: evaluatorAccessesTotal.WithLabelValues(name, "Miss"),
	}
}

func (e *metricsEvaluator[T]) Evaluate(workload []T, capacity int) (int, error) {
	hits, err := e.base.Evaluate(workload, capacity)
	if err != nil {
		return 0, err
	}
	e.hits.Add(float64(hits))
	e.misses.Add(float64(len(workload) - hits))
	return hits, nil
}
