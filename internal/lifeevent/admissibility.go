package lifeevent

import (
	"context"
	"fmt"
	"time"

	"mottak/internal/casesystem"
	"mottak/internal/legacy"
)

// admissible decides whether an event date may raise a review item for a
// case. Events predating the earliest record of the person ever holding a
// live case are registry noise and are suppressed. For cases migrated from
// the legacy system, the modern decision history starts at migration, so
// the check falls back to the oldest legacy decision month.
func (e *Engine) admissible(ctx context.Context, c *casesystem.Case, eventDate time.Time, aliasIDs []string) (bool, error) {
	earliest := c.EarliestGrantedDecision()
	if earliest == nil {
		return false, nil
	}
	if eventDate.After(earliest.CreatedAt) {
		return true, nil
	}
	if earliest.Type != casesystem.TypeMigratedFromLegacy {
		return false, nil
	}

	records, err := e.legacy.FindHistoricalDecisions(ctx, aliasIDs)
	if err != nil {
		return false, fmt.Errorf("legacy decision history: %w", err)
	}
	oldest, ok := oldestDecisionMonth(records)
	if !ok {
		return false, nil
	}
	return oldest.Before(eventDate), nil
}

// oldestDecisionMonth decodes every granted decision's sequence and
// returns the earliest month. Undecodable sequences are skipped.
func oldestDecisionMonth(records []legacy.Record) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, rec := range records {
		if rec.Benefit == nil {
			continue
		}
		month, err := legacy.DecodeSequence(rec.Benefit.DecisionSequence)
		if err != nil {
			continue
		}
		if !found || month.Before(oldest) {
			oldest = month
			found = true
		}
	}
	return oldest, found
}
