// Package metrics collects task-worker counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts processed tasks.
type Collector struct {
	tasks *prometheus.CounterVec
}

// New creates a Collector and registers it on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mottak_tasks_total",
			Help: "Processed tasks by type and outcome",
		}, []string{"type", "outcome"}),
	}

	reg.MustRegister(c.tasks)
	return c
}

// RecordTask counts one task; outcome is ok, rescheduled, retried or failed.
func (c *Collector) RecordTask(taskType, outcome string) {
	c.tasks.WithLabelValues(taskType, outcome).Inc()
}
