// Package lifeevent consolidates population-registry life events into
// caseworker review items, merging repeated notifications for the same
// household into a single open item per event class.
package lifeevent

import (
	"mottak/internal/benefit"
	"mottak/internal/workitem"
)

// EventType classifies a life-event notification.
type EventType string

const (
	EventDeath         EventType = "DEATH"
	EventEmigration    EventType = "EMIGRATION"
	EventMaritalStatus EventType = "MARITAL_STATUS"
	// EventAddress is reserved; notifications of this type are accepted
	// and dropped until address handling lands.
	EventAddress EventType = "ADDRESS"
)

// Notification is one life event delivered by the upstream queue, already
// fanned out per benefit line.
type Notification struct {
	SubjectID string
	Type      EventType
	Line      benefit.Line
}

// labelFor maps an event type to the fixed description label. Returns ""
// for types that produce no review item.
func labelFor(t EventType) workitem.Label {
	switch t {
	case EventDeath:
		return workitem.LabelDeath
	case EventMaritalStatus:
		return workitem.LabelMaritalChange
	case EventEmigration:
		return workitem.LabelEmigration
	}
	return ""
}
