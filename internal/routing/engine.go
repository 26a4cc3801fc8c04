// Package routing decides which case-management back-end currently owns a
// person's case: the modern system, the legacy mainframe, both, or neither.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mottak/internal/casesystem"
	"mottak/internal/identity"
	"mottak/internal/legacy"
	pkgstrings "mottak/pkg/strings"
)

// migrationCutover is the date the migration from the legacy system started.
// Legacy case records whose benefit was closed as MIGRATED after this date
// are residue of a completed migration and do not count as live cases.
var migrationCutover = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Recorder counts verdicts per branch taken. Observability only; no bearing
// on the decision.
type Recorder interface {
	RecordVerdict(system string)
}

type noopRecorder struct{}

func (noopRecorder) RecordVerdict(string) {}

// Engine is the routing decision function for one benefit line. It is
// state-free: every decision re-derives everything from the registry and the
// two case systems.
type Engine struct {
	identity *identity.Resolver
	modern   casesystem.Client
	legacy   legacy.Client
	metrics  Recorder
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRecorder attaches a verdict recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.metrics = r
	}
}

// NewEngine builds a routing engine over the given clients.
func NewEngine(resolver *identity.Resolver, modern casesystem.Client, legacyClient legacy.Client, opts ...Option) (*Engine, error) {
	if resolver == nil {
		return nil, fmt.Errorf("identity resolver is required")
	}
	if modern == nil {
		return nil, fmt.Errorf("modern case-system client is required")
	}
	if legacyClient == nil {
		return nil, fmt.Errorf("legacy client is required")
	}

	e := &Engine{
		identity: resolver,
		modern:   modern,
		legacy:   legacyClient,
		metrics:  noopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Decide determines where personID, believed to be a case applicant, has a
// live case. Registry failures degrade to "no information" and yield the
// neither-verdict; failures from the case systems themselves are returned
// for the task runner to retry.
func (e *Engine) Decide(ctx context.Context, personID string) (Verdict, error) {
	aliases, err := e.identity.ResolveAliases(ctx, personID)
	if err != nil {
		e.logger.Warn("alias resolution failed, routing without case info", "error", err)
		return e.record(Verdict{System: SystemNone}), nil
	}
	childIDs, childAliases := e.resolveChildAliases(ctx, personID)

	modernParty, modernFound, err := e.modernParty(ctx, aliases.All(), childIDs)
	if err != nil {
		return Verdict{}, err
	}
	legacyParty, legacyFound, err := e.legacyParty(ctx, aliases.All(), childAliases)
	if err != nil {
		return Verdict{}, err
	}

	switch {
	case modernFound && legacyFound:
		return e.record(Verdict{System: SystemBoth, Party: modernParty}), nil
	case modernFound:
		return e.record(Verdict{System: SystemModern, Party: modernParty}), nil
	case legacyFound:
		return e.record(Verdict{System: SystemLegacy, Party: legacyParty}), nil
	default:
		return e.record(Verdict{System: SystemNone}), nil
	}
}

func (e *Engine) record(v Verdict) Verdict {
	e.metrics.RecordVerdict(string(v.System))
	return v
}

// resolveChildAliases expands the person's children to their full alias sets.
// Registry noise here means "no information", never a failed decision.
func (e *Engine) resolveChildAliases(ctx context.Context, personID string) (childIDs, childAliases []string) {
	children, err := e.identity.ResolveChildren(ctx, personID)
	if err != nil {
		e.logger.Warn("child resolution failed, routing without children", "error", err)
		return nil, nil
	}
	for _, child := range children {
		childIDs = append(childIDs, child.ID)
		aliases, err := e.identity.ResolveAliases(ctx, child.ID)
		if err != nil {
			e.logger.Warn("child alias resolution failed, using bare id", "error", err)
			childAliases = append(childAliases, child.ID)
			continue
		}
		childAliases = append(childAliases, aliases.All()...)
	}
	return childIDs, pkgstrings.DedupeAndTrim(childAliases)
}

// modernParty classifies matches from the modern case system.
func (e *Engine) modernParty(ctx context.Context, applicantIDs, childIDs []string) (Party, bool, error) {
	rows, err := e.modern.FindCasesForApplicantOrRecipient(ctx, applicantIDs, childIDs)
	if err != nil {
		return "", false, fmt.Errorf("modern case search: %w", err)
	}

	childHit := false
	for _, row := range rows {
		live, err := e.hasLiveModernCase(ctx, row)
		if err != nil {
			return "", false, err
		}
		if !live {
			continue
		}
		if row.Role == casesystem.RoleApplicant {
			return PartyApplicant, true, nil
		}
		childHit = true
	}
	if childHit {
		return PartyOther, true, nil
	}
	return "", false, nil
}

// hasLiveModernCase applies the closed-case policy: a CLOSED case still
// counts unless its last closed decision was a technical change or a
// withdrawal.
func (e *Engine) hasLiveModernCase(ctx context.Context, row casesystem.CaseParty) (bool, error) {
	switch row.Status {
	case casesystem.StatusOpened, casesystem.StatusOngoing:
		return true, nil
	case casesystem.StatusClosed:
		c, err := e.modern.FetchCase(ctx, row.CaseID)
		if err != nil {
			return false, fmt.Errorf("fetch case %d: %w", row.CaseID, err)
		}
		last := c.LatestClosedDecision()
		if last == nil {
			return true, nil
		}
		if last.Type == casesystem.TypeTechnicalChange || strings.HasPrefix(last.Outcome, casesystem.OutcomeWithdrawnPrefix) {
			return false, nil
		}
		return true, nil
	default:
		return false, nil
	}
}

// legacyParty classifies matches from the legacy mainframe: active benefit
// payments first, then case records.
func (e *Engine) legacyParty(ctx context.Context, applicantIDs, childIDs []string) (Party, bool, error) {
	benefits, err := e.legacy.FindActiveBenefit(ctx, applicantIDs, childIDs)
	if err != nil {
		return "", false, fmt.Errorf("legacy benefit search: %w", err)
	}
	if len(benefits.Applicant) > 0 {
		return PartyApplicant, true, nil
	}
	if len(benefits.Children) > 0 {
		return PartyOther, true, nil
	}

	cases, err := e.legacy.FindCaseRecords(ctx, applicantIDs, childIDs)
	if err != nil {
		return "", false, fmt.Errorf("legacy case search: %w", err)
	}
	if hasLiveLegacyCase(cases.Applicant) {
		return PartyApplicant, true, nil
	}
	if hasLiveLegacyCase(cases.Children) {
		return PartyOther, true, nil
	}
	return "", false, nil
}

// hasLiveLegacyCase reports whether any record represents a case the
// mainframe still owns. Records with a granted benefit count unless they are
// all residue of a post-cutover migration; records without one count unless
// fully completed.
//
// The cutover check runs only on the granted-benefit branch; whether the
// no-benefit branch should get the same check is an open product question,
// so the behavior is preserved as is.
func hasLiveLegacyCase(records []legacy.Record) bool {
	var granted, ungranted []legacy.Record
	for _, rec := range records {
		if rec.Benefit != nil {
			granted = append(granted, rec)
		} else {
			ungranted = append(ungranted, rec)
		}
	}

	if len(granted) > 0 && !migratedOut(granted) {
		return true
	}
	for _, rec := range ungranted {
		if rec.Status != legacy.StatusCompleted {
			return true
		}
	}
	return false
}

// migratedOut reports whether any granted record was closed as migrated
// after the cutover date.
func migratedOut(records []legacy.Record) bool {
	for _, rec := range records {
		if rec.Benefit.ClosureReason != legacy.ClosureReasonMigrated {
			continue
		}
		month, err := legacy.DecodeSequence(rec.Benefit.DecisionSequence)
		if err != nil {
			continue
		}
		if month.After(migrationCutover) {
			return true
		}
	}
	return false
}
