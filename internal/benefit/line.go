// Package benefit defines the benefit lines served by this process and the
// subtype tags stamped onto work items for queue routing downstream.
package benefit

import "fmt"

// Line identifies a welfare-benefit line. Each line has its own modern
// case-management back-end; both share the legacy mainframe.
type Line string

const (
	ChildBenefit Line = "CHILD_BENEFIT"
	CashForCare  Line = "CASH_FOR_CARE"
)

// Valid reports whether l is a known benefit line.
func (l Line) Valid() bool {
	return l == ChildBenefit || l == CashForCare
}

// ErrUnsupportedLine is returned by line-specific branches handed a line they
// do not serve. This indicates a wiring bug, not bad input.
func ErrUnsupportedLine(l Line) error {
	return fmt.Errorf("benefit line %q is not supported here", l)
}

// Tag is the benefit-subtype tag carried on a work item. It tells the
// caseworker queue which sub-benefit the underlying case concerns.
type Tag string

const (
	TagChildBenefit         Tag = "CHILD_BENEFIT"
	TagChildBenefitEEA      Tag = "CHILD_BENEFIT_EEA"
	TagOrdinaryChildBenefit Tag = "ORDINARY_CHILD_BENEFIT"
	TagExtendedChildBenefit Tag = "EXTENDED_CHILD_BENEFIT"
	TagCashForCare          Tag = "CASH_FOR_CARE"
	TagCashForCareEEA       Tag = "CASH_FOR_CARE_EEA"
)

// GenericTag returns the line's fallback tag, used when a case has no
// decision to derive a more specific subtype from.
func (l Line) GenericTag() Tag {
	if l == CashForCare {
		return TagCashForCare
	}
	return TagChildBenefit
}
