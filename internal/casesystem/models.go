// Package casesystem models the modern case-management back-ends and exposes
// the client port the engines query. One client instance exists per benefit
// line; the legacy mainframe lives in package legacy.
package casesystem

import "time"

// SystemID names one of the two case-management back-ends.
type SystemID string

const (
	SystemModern SystemID = "MODERN"
	SystemLegacy SystemID = "LEGACY"
)

// PartyRole is the role a matched person plays on a case.
type PartyRole string

const (
	RoleApplicant PartyRole = "APPLICANT"
	RoleChild     PartyRole = "CHILD"
	RoleUnknown   PartyRole = "UNKNOWN"
)

// CaseStatus is the lifecycle status of a case.
type CaseStatus string

const (
	StatusOpened  CaseStatus = "OPENED"
	StatusOngoing CaseStatus = "ONGOING"
	StatusClosed  CaseStatus = "CLOSED"
)

// CaseParty is one (person, case) match returned by a case search. PersonID
// is the case's own applicant, the person a work item would be raised on;
// Role records whether the searched ids matched as the applicant or as a
// child tied to the case.
type CaseParty struct {
	PersonID string
	Role     PartyRole
	CaseID   int64
	Status   CaseStatus
}

// DecisionCategory is a decision's top-level category.
type DecisionCategory string

const (
	CategoryDomestic DecisionCategory = "DOMESTIC"
	CategoryEEA      DecisionCategory = "EEA"
)

// DecisionSubcategory narrows a domestic decision. Empty when not applicable.
type DecisionSubcategory string

const (
	SubcategoryOrdinary DecisionSubcategory = "ORDINARY"
	SubcategoryExtended DecisionSubcategory = "EXTENDED"
)

// DecisionType is the kind of processing round a decision represents.
type DecisionType string

const (
	TypeFirstTime          DecisionType = "FIRST_TIME"
	TypeRevision           DecisionType = "REVISION"
	TypeMigratedFromLegacy DecisionType = "MIGRATED_FROM_LEGACY"
	// TypeMigratedFromLegacyClosed marks migrations of already-closed cases.
	TypeMigratedFromLegacyClosed DecisionType = "MIGRATED_FROM_LEGACY_CLOSED"
	TypeTechnicalChange          DecisionType = "TECHNICAL_CHANGE"
)

// Processing steps and outcome codes referenced by policy. Outcome is free
// text in the back-end; only GRANTED and the WITHDRAWN prefix are meaningful.
const (
	StepClosed = "CLOSED"

	OutcomeGranted         = "GRANTED"
	OutcomeWithdrawnPrefix = "WITHDRAWN"
)

// Decision is one processing round on a case. Decisions are append-only; at
// most one has Active set at a time.
type Decision struct {
	CreatedAt      time.Time
	Category       DecisionCategory
	Subcategory    DecisionSubcategory
	Type           DecisionType
	Outcome        string
	ProcessingStep string
	Active         bool
}

// Case is a person's benefit case with its ordered decision history.
type Case struct {
	ID        int64
	Status    CaseStatus
	Decisions []Decision
}

// LatestClosedDecision returns the most recent decision whose processing step
// is CLOSED, or nil when the case has none.
func (c *Case) LatestClosedDecision() *Decision {
	var latest *Decision
	for i := range c.Decisions {
		d := &c.Decisions[i]
		if d.ProcessingStep != StepClosed {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	return latest
}

// ActiveDecision returns the case's single active decision, or nil.
func (c *Case) ActiveDecision() *Decision {
	for i := range c.Decisions {
		if c.Decisions[i].Active {
			return &c.Decisions[i]
		}
	}
	return nil
}

// EarliestGrantedDecision returns the earliest decision that was granted and
// fully closed, or nil. Temporal admissibility anchors on this decision.
func (c *Case) EarliestGrantedDecision() *Decision {
	var earliest *Decision
	for i := range c.Decisions {
		d := &c.Decisions[i]
		if d.Outcome != OutcomeGranted || d.ProcessingStep != StepClosed {
			continue
		}
		if earliest == nil || d.CreatedAt.Before(earliest.CreatedAt) {
			earliest = d
		}
	}
	return earliest
}
