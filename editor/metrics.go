package editor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Commands     *prometheus.CounterVec
	TilesPainted prometheus.Counter
}

// NewMetrics registers the editor counters on reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terrain_delta",
			Name:      "commands_total",
			Help:      "Paint commands executed, by operation.",
		}, []string{"op"}),
		TilesPainted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "terrain_delta",
			Name:      "tiles_painted_total",
			Help:      "Distinct tiles changed by paint commands.",
		}),
	}
}

func (m *Metrics) command(op string) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(op).Inc()
}

func (m *Metrics) painted(n int) {
	if m == nil || n == 0 {
		return
	}
	m.TilesPainted.Add(float64(n))
}
