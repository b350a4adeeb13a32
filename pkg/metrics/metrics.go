/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics is ambient instrumentation for the annealing search: a
// private Prometheus registry namespaced the way the teacher namespaces
// its own batcher metrics (pkg/batcher/metrics.go), exposing a search
// duration histogram and an accept/reject move counter. Optimization
// correctness never depends on this package; it exists purely so a
// surrounding service can scrape run-level search behavior.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "atc_roster"
	subsystem = "annealing"
)

// DurationBuckets mirrors the teacher's bucket-helper convention
// (pkg/batcher/metrics.go's SizeBuckets): a fresh slice per call so
// callers can't mutate a shared default.
func DurationBuckets() []float64 {
	return []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15, 20, 30, 45, 60}
}

// Registry bundles the metrics for one process. Callers that don't care
// about metrics can simply never read from it.
type Registry struct {
	Prometheus *prometheus.Registry

	SearchDuration prometheus.Histogram
	MovesAccepted  prometheus.Counter
	MovesRejected  prometheus.Counter
	RepairWarnings prometheus.Counter
}

// NewRegistry builds a fresh, private registry (never the global
// DefaultRegisterer) so multiple optimizer runs in one process, or
// concurrent tests, never collide on metric registration.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		Prometheus: reg,
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of one annealing search run.",
			Buckets:   DurationBuckets(),
		}),
		MovesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moves_accepted_total",
			Help:      "Candidate moves accepted by the Metropolis criterion.",
		}),
		MovesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moves_rejected_total",
			Help:      "Candidate moves rejected by the Metropolis criterion.",
		}),
		RepairWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "repair_warnings_total",
			Help:      "Repair passes that had to take a documented last-resort deviation.",
		}),
	}
	reg.MustRegister(r.SearchDuration, r.MovesAccepted, r.MovesRejected, r.RepairWarnings)
	return r
}
