package routing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"mottak/internal/casesystem"
	"mottak/internal/identity"
	"mottak/internal/legacy"
)

const (
	applicantID = "12345678901"
	historicID  = "10987654321"
	childID     = "20000000001"
)

type EngineSuite struct {
	suite.Suite
	registry *identity.MemoryRegistry
	modern   *casesystem.MemoryClient
	legacy   *legacy.MemoryClient
	recorder *fakeRecorder
	engine   *Engine
}

type fakeRecorder struct {
	systems []string
}

func (f *fakeRecorder) RecordVerdict(system string) {
	f.systems = append(f.systems, system)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.registry = identity.NewMemoryRegistry()
	s.modern = casesystem.NewMemoryClient()
	s.legacy = legacy.NewMemoryClient()
	s.recorder = &fakeRecorder{}

	s.registry.AddPerson(applicantID, historicID)
	s.registry.AddPerson(childID)
	s.registry.SetRelations(applicantID, identity.Relation{ID: childID, Role: identity.RoleChild})

	resolver, err := identity.NewResolver(s.registry)
	s.Require().NoError(err)

	s.engine, err = NewEngine(resolver, s.modern, s.legacy, WithRecorder(s.recorder))
	s.Require().NoError(err)
}

func (s *EngineSuite) decide() Verdict {
	v, err := s.engine.Decide(context.Background(), applicantID)
	s.Require().NoError(err)
	return v
}

func (s *EngineSuite) TestModernOnly() {
	s.Run("opened applicant case yields modern-only verdict", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{ID: 1, Status: casesystem.StatusOpened}, applicantID)

		v := s.decide()
		s.Equal(SystemModern, v.System)
		s.Equal(PartyApplicant, v.Party)
		s.Equal("Bruker har sak i BA-sak", v.Annotation())
		s.Equal([]string{"modern"}, s.recorder.systems)
	})

	s.Run("match via historical alias still counts", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{ID: 1, Status: casesystem.StatusOngoing}, historicID)

		v := s.decide()
		s.Equal(SystemModern, v.System)
		s.Equal(PartyApplicant, v.Party)
	})

	s.Run("child-only match renders sibling party", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{ID: 2, Status: casesystem.StatusOngoing}, "99999999999", childID)

		v := s.decide()
		s.Equal(SystemModern, v.System)
		s.Equal(PartyOther, v.Party)
		s.Equal("Søsken har sak i BA-sak", v.Annotation())
	})
}

func (s *EngineSuite) TestClosedModernCases() {
	now := time.Now()

	s.Run("withdrawn closure does not count", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{
			ID:     1,
			Status: casesystem.StatusClosed,
			Decisions: []casesystem.Decision{{
				CreatedAt:      now,
				Type:           casesystem.TypeFirstTime,
				Outcome:        "WITHDRAWN_DUPLICATE",
				ProcessingStep: casesystem.StepClosed,
			}},
		}, applicantID)

		v := s.decide()
		s.Equal(SystemNone, v.System)
		s.Equal("", v.Annotation())
		s.Equal([]string{"none"}, s.recorder.systems)
	})

	s.Run("technical-change closure does not count", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{
			ID:     1,
			Status: casesystem.StatusClosed,
			Decisions: []casesystem.Decision{{
				CreatedAt:      now,
				Type:           casesystem.TypeTechnicalChange,
				Outcome:        "GRANTED",
				ProcessingStep: casesystem.StepClosed,
			}},
		}, applicantID)

		s.Equal(SystemNone, s.decide().System)
	})

	s.Run("ordinary closure still counts", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{
			ID:     1,
			Status: casesystem.StatusClosed,
			Decisions: []casesystem.Decision{{
				CreatedAt:      now,
				Type:           casesystem.TypeRevision,
				Outcome:        "GRANTED",
				ProcessingStep: casesystem.StepClosed,
			}},
		}, applicantID)

		s.Equal(SystemModern, s.decide().System)
	})

	s.Run("only the most recent closed decision is inspected", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{
			ID:     1,
			Status: casesystem.StatusClosed,
			Decisions: []casesystem.Decision{
				{CreatedAt: now.Add(-48 * time.Hour), Type: casesystem.TypeFirstTime, Outcome: "GRANTED", ProcessingStep: casesystem.StepClosed},
				{CreatedAt: now, Type: casesystem.TypeRevision, Outcome: "WITHDRAWN", ProcessingStep: casesystem.StepClosed},
			},
		}, applicantID)

		s.Equal(SystemNone, s.decide().System)
	})

	s.Run("closed case without closed decision counts", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{ID: 1, Status: casesystem.StatusClosed}, applicantID)

		s.Equal(SystemModern, s.decide().System)
	})
}

func (s *EngineSuite) TestLegacy() {
	s.Run("active benefit for applicant", func() {
		s.SetupTest()
		s.legacy.AddActiveBenefit(applicantID, legacy.Record{Status: legacy.StatusImplemented})

		v := s.decide()
		s.Equal(SystemLegacy, v.System)
		s.Equal(PartyApplicant, v.Party)
		s.Equal("Bruker har sak i Infotrygd", v.Annotation())
	})

	s.Run("active benefit for child only", func() {
		s.SetupTest()
		s.legacy.AddActiveBenefit(childID, legacy.Record{Status: legacy.StatusImplemented})

		v := s.decide()
		s.Equal(SystemLegacy, v.System)
		s.Equal(PartyOther, v.Party)
		s.Equal("Søsken har sak i Infotrygd", v.Annotation())
	})

	s.Run("case record without benefit counts unless fully completed", func() {
		s.SetupTest()
		s.legacy.AddCaseRecord(applicantID, legacy.Record{Status: legacy.StatusUnderProcessing})

		s.Equal(SystemLegacy, s.decide().System)

		s.SetupTest()
		s.legacy.AddCaseRecord(applicantID, legacy.Record{Status: legacy.StatusCompleted})

		s.Equal(SystemNone, s.decide().System)
	})

	s.Run("post-cutover migration residue is excluded", func() {
		s.SetupTest()
		seq := legacy.EncodeSequence(time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC))
		s.legacy.AddCaseRecord(applicantID, legacy.Record{
			Status:  legacy.StatusCompleted,
			Benefit: &legacy.Benefit{ClosureReason: legacy.ClosureReasonMigrated, DecisionSequence: seq},
		})

		s.Equal(SystemNone, s.decide().System)
	})

	s.Run("pre-cutover migrated benefit still counts", func() {
		s.SetupTest()
		seq := legacy.EncodeSequence(time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC))
		s.legacy.AddCaseRecord(applicantID, legacy.Record{
			Status:  legacy.StatusCompleted,
			Benefit: &legacy.Benefit{ClosureReason: legacy.ClosureReasonMigrated, DecisionSequence: seq},
		})

		s.Equal(SystemLegacy, s.decide().System)
	})
}

func (s *EngineSuite) TestCombined() {
	s.Run("case in both systems", func() {
		s.SetupTest()
		s.modern.AddCase(casesystem.Case{ID: 1, Status: casesystem.StatusOngoing}, applicantID)
		s.legacy.AddActiveBenefit(applicantID, legacy.Record{Status: legacy.StatusImplemented})

		v := s.decide()
		s.Equal(SystemBoth, v.System)
		s.Equal("Bruker har sak i både Infotrygd og BA-sak", v.Annotation())
		s.Equal([]string{"both"}, s.recorder.systems)
	})

	s.Run("nothing anywhere", func() {
		s.SetupTest()

		v := s.decide()
		s.Equal(SystemNone, v.System)
		s.Equal("", v.Annotation())
	})
}

func (s *EngineSuite) TestRegistryFailureDegrades() {
	v, err := s.engine.Decide(context.Background(), "unknown-person")
	s.NoError(err)
	s.Equal(SystemNone, v.System)
	s.Equal("", v.Annotation())
}
