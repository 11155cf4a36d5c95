package form

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// Metrics counts lifecycle transitions. A nil *Metrics records nothing.
type Metrics struct {
	transitions *prometheus.CounterVec
	duplicates  prometheus.Counter
	purges      prometheus.Counter
}

// NewMetrics creates the form counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dojo",
			Subsystem: "forms",
			Name:      "transitions_total",
			Help:      "Form lifecycle transitions by action.",
		}, []string{"action"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dojo",
			Subsystem: "forms",
			Name:      "duplicates_rejected_total",
			Help:      "Writes rejected because an alive form already holds the identity.",
		}),
		purges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dojo",
			Subsystem: "forms",
			Name:      "purged_total",
			Help:      "Trashed forms removed by retention purges.",
		}),
	}
	reg.MustRegister(m.transitions, m.duplicates, m.purges)
	return m
}

func (m *Metrics) transition(action domain.AuditAction) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(action.String()).Inc()
}

func (m *Metrics) duplicate() {
	if m == nil {
		return
	}
	m.duplicates.Inc()
}

func (m *Metrics) purged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.purges.Add(float64(n))
}
