package lifeevent

import (
	"context"

	"mottak/internal/benefit"
	"mottak/internal/casesystem"
	"mottak/internal/identity"
)

// Policy is the per-benefit-line strategy: which case searches an event
// triggers and how a settled decision maps to a work-item subtype tag.
// One implementation exists per line; the engine selects by the
// notification's line.
type Policy interface {
	Line() benefit.Line

	// AffectedParties returns the (case, representative) pairs the event
	// touches. Returns benefit.ErrUnsupportedLine for event types the
	// line does not handle.
	AffectedParties(ctx context.Context, subject identity.Aliases, eventType EventType) ([]casesystem.CaseParty, error)

	// Cases exposes the line's case-system client.
	Cases() casesystem.Client

	// Tag derives the subtype tag from a case's settled decision. A nil
	// decision yields the line's generic tag.
	Tag(d *casesystem.Decision) benefit.Tag
}

type childBenefitPolicy struct {
	cases casesystem.Client
}

// NewChildBenefitPolicy builds the child-benefit consolidation policy.
func NewChildBenefitPolicy(cases casesystem.Client) Policy {
	return &childBenefitPolicy{cases: cases}
}

func (p *childBenefitPolicy) Line() benefit.Line       { return benefit.ChildBenefit }
func (p *childBenefitPolicy) Cases() casesystem.Client { return p.cases }

func (p *childBenefitPolicy) AffectedParties(ctx context.Context, subject identity.Aliases, eventType EventType) ([]casesystem.CaseParty, error) {
	ids := subject.All()
	if eventType == EventMaritalStatus {
		// Marital changes only matter for cases currently paying out.
		return p.cases.FindCasesForActiveBenefit(ctx, ids)
	}
	return p.cases.FindCasesForApplicantOrRecipient(ctx, ids, ids)
}

func (p *childBenefitPolicy) Tag(d *casesystem.Decision) benefit.Tag {
	if d == nil {
		return benefit.TagChildBenefit
	}
	if d.Category == casesystem.CategoryEEA {
		return benefit.TagChildBenefitEEA
	}
	if d.Subcategory == casesystem.SubcategoryExtended {
		return benefit.TagExtendedChildBenefit
	}
	return benefit.TagOrdinaryChildBenefit
}

type cashForCarePolicy struct {
	cases casesystem.Client
}

// NewCashForCarePolicy builds the cash-for-care consolidation policy.
// Marital-status events are not evaluated for this line.
func NewCashForCarePolicy(cases casesystem.Client) Policy {
	return &cashForCarePolicy{cases: cases}
}

func (p *cashForCarePolicy) Line() benefit.Line       { return benefit.CashForCare }
func (p *cashForCarePolicy) Cases() casesystem.Client { return p.cases }

func (p *cashForCarePolicy) AffectedParties(ctx context.Context, subject identity.Aliases, eventType EventType) ([]casesystem.CaseParty, error) {
	if eventType == EventMaritalStatus {
		return nil, benefit.ErrUnsupportedLine(benefit.CashForCare)
	}
	ids := subject.All()
	return p.cases.FindCasesForApplicantOrRecipient(ctx, ids, ids)
}

func (p *cashForCarePolicy) Tag(d *casesystem.Decision) benefit.Tag {
	if d != nil && d.Category == casesystem.CategoryEEA {
		return benefit.TagCashForCareEEA
	}
	return benefit.TagCashForCare
}
