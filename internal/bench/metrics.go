package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the per-run collectors on a private registry.
type metrics struct {
	reg      *prometheus.Registry
	seconds  prometheus.Gauge
	nodes    prometheus.Gauge
	length   prometheus.Gauge
	merges   prometheus.Counter
	conquers prometheus.Counter
	moves    prometheus.Counter
}

func newMetrics(runID string) *metrics {
	labels := prometheus.Labels{"run": runID}
	m := &metrics{
		reg: prometheus.NewRegistry(),
		seconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tourbench_tsp_seconds",
			Help:        "Wall time of tour construction in seconds.",
			ConstLabels: labels,
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tourbench_nodes",
			Help:        "Number of tree nodes in the run.",
			ConstLabels: labels,
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "tourbench_tour_length",
			Help:        "Closed Euclidean length of the finished tour.",
			ConstLabels: labels,
		}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tourbench_merges_total",
			Help:        "Pairwise tour merges performed.",
			ConstLabels: labels,
		}),
		conquers: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tourbench_conquers_total",
			Help:        "Partitions toured by nearest insertion.",
			ConstLabels: labels,
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tourbench_two_opt_moves_total",
			Help:        "Accepted 2-opt moves.",
			ConstLabels: labels,
		}),
	}
	m.reg.MustRegister(m.seconds, m.nodes, m.length, m.merges, m.conquers, m.moves)
	return m
}

func (m *metrics) observe(r Report) {
	m.seconds.Set(r.TSPTime.Seconds())
	m.nodes.Set(float64(r.Nodes))
	m.length.Set(r.Length)
	m.merges.Add(float64(r.Stats.Merged))
	m.conquers.Add(float64(r.Stats.Conquered))
	m.moves.Add(float64(r.Stats.TwoOptMoves))
}

// writeFile dumps the registry in the node-exporter textfile format.
func (m *metrics) writeFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("bench: metrics: %w", err)
	}
	return nil
}
