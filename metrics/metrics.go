// Package metrics records run statistics for the socialgraph CLI on a
// private Prometheus registry that can be dumped as a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialgraph"

// Recorder owns the collectors for one process.
type Recorder struct {
	reg *prometheus.Registry

	AlgorithmDuration *prometheus.HistogramVec
	SimplePaths       prometheus.Counter
	GraphNodes        prometheus.Gauge
	GraphConnections  prometheus.Gauge
	Runs              *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		AlgorithmDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "algorithm_duration_seconds",
			Help:      "Wall time of one algorithm run, labelled by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
		SimplePaths: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simple_paths_enumerated_total",
			Help:      "Simple paths enumerated while computing betweenness.",
		}),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Number of node keys in the loaded graph.",
		}),
		GraphConnections: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_unique_connections",
			Help:      "Number of unique undirected connections in the loaded graph.",
		}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs, labelled by status.",
		}, []string{"status"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Time starts a timer for algorithm; call the returned func when it ends.
func (r *Recorder) Time(algorithm string) func() {
	start := time.Now()
	return func() {
		r.AlgorithmDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
	}
}

// AddPaths counts enumerated simple paths.
func (r *Recorder) AddPaths(n int) {
	if n > 0 {
		r.SimplePaths.Add(float64(n))
	}
}

// SetGraph records the shape of the loaded graph.
func (r *Recorder) SetGraph(nodes, connections int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphConnections.Set(float64(connections))
}

// RunFinished counts a run as ok or error.
func (r *Recorder) RunFinished(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.Runs.WithLabelValues(status).Inc()
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
