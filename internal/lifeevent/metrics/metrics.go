// Package metrics collects life-event consolidation counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts consolidation outcomes.
type Collector struct {
	outcomes *prometheus.CounterVec
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mottak_lifeevent_outcomes_total",
			Help: "Life-event consolidation outcomes per benefit line and event type",
		}, []string{"line", "event", "outcome"}),
	}

	reg.MustRegister(c.outcomes)
	return c
}

// RecordConsolidation counts one outcome; outcome is created or merged.
func (c *Collector) RecordConsolidation(line, event, outcome string) {
	c.outcomes.WithLabelValues(line, event, outcome).Inc()
}
