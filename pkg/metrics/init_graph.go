package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routing_graph_nodes",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routing_graph_edges",
			Help: "Number of edges in the loaded graph",
		},
	)

	r.GraphNegativeEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routing_graph_negative_edges",
			Help: "Number of negative-weight edges in the loaded graph",
		},
	)
}
