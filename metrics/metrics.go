// Package metrics defines Prometheus metrics for task runs.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TaskDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netex_task_duration_seconds",
			Help:    "Task run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 9),
		},
		[]string{"algorithm", "status"},
	)

	TasksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netex_tasks_total",
			Help: "Total task runs",
		},
		[]string{"algorithm", "status"},
	)

	SnapshotLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netex_snapshot_load_duration_seconds",
			Help:    "Graph snapshot load duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "netex_graph_nodes",
			Help: "Node count of the last working graph",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "netex_graph_edges",
			Help: "Edge count of the last working graph",
		},
	)
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusEmpty = "empty"
	StatusError = "error"
)

// Register adds every collector to reg. Registering twice on the same
// registry fails with prometheus.AlreadyRegisteredError.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		TaskDuration, TasksTotal, SnapshotLoadDuration, GraphNodes, GraphEdges,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
