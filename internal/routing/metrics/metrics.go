// Package metrics collects routing counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts routing verdicts and filing work-item outcomes.
type Collector struct {
	verdicts    *prometheus.CounterVec
	filingItems *prometheus.CounterVec
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mottak_routing_verdicts_total",
			Help: "Routing verdicts by owning case system",
		}, []string{"system"}),
		filingItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mottak_routing_filing_items_total",
			Help: "Filing work-item outcomes by action taken",
		}, []string{"line", "action"}),
	}

	reg.MustRegister(c.verdicts, c.filingItems)
	return c
}

// RecordVerdict counts one verdict for the branch taken.
func (c *Collector) RecordVerdict(system string) {
	c.verdicts.WithLabelValues(system).Inc()
}

// RecordFilingItem counts a filing work-item outcome; action is one of
// created, updated, skipped.
func (c *Collector) RecordFilingItem(line, action string) {
	c.filingItems.WithLabelValues(line, action).Inc()
}
