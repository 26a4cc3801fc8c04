package workitem

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DescriptionSuite struct {
	suite.Suite
}

func TestDescriptionSuite(t *testing.T) {
	suite.Run(t, new(DescriptionSuite))
}

func (s *DescriptionSuite) TestRendering() {
	s.Run("empty state renders label only", func() {
		st := DescriptionState{Label: LabelDeath}
		s.Equal("Dødsfall:", st.String())
	})

	s.Run("applicant only", func() {
		st := DescriptionState{Label: LabelDeath}.AddApplicant()
		s.Equal("Dødsfall: bruker", st.String())
	})

	s.Run("single child omits the count", func() {
		st := DescriptionState{Label: LabelEmigration}.AddChild("456")
		s.Equal("Utflytting: barn 456", st.String())
	})

	s.Run("applicant and children compose with og", func() {
		st := DescriptionState{Label: LabelDeath}
		st = st.AddApplicant()
		s.Equal("Dødsfall: bruker", st.String())

		st = st.AddChild("456")
		s.Equal("Dødsfall: bruker og barn 456", st.String())

		st = st.AddChild("789")
		s.Equal("Dødsfall: bruker og 2 barn 456 789", st.String())
	})

	s.Run("marital change label", func() {
		st := DescriptionState{Label: LabelMaritalChange}.AddApplicant()
		s.Equal("Endring i sivilstand: bruker", st.String())
	})
}

func (s *DescriptionSuite) TestIdempotence() {
	s.Run("adding the applicant twice changes nothing", func() {
		st := DescriptionState{Label: LabelDeath}.AddApplicant()
		s.Equal("Dødsfall: bruker", st.String())
		s.Equal("Dødsfall: bruker", st.AddApplicant().String())
	})

	s.Run("adding a known child changes nothing", func() {
		st := DescriptionState{Label: LabelDeath}.AddChild("456").AddChild("456")
		s.Equal("Dødsfall: barn 456", st.String())
	})
}

func (s *DescriptionSuite) TestParse() {
	cases := []struct {
		name string
		text string
		want DescriptionState
	}{
		{
			name: "label only",
			text: "Dødsfall:",
			want: DescriptionState{Label: LabelDeath},
		},
		{
			name: "applicant only",
			text: "Dødsfall: bruker",
			want: DescriptionState{Label: LabelDeath, HasApplicant: true},
		},
		{
			name: "single child",
			text: "Dødsfall: barn 456",
			want: DescriptionState{Label: LabelDeath, ChildIDs: []string{"456"}},
		},
		{
			name: "applicant and counted children",
			text: "Dødsfall: bruker og 2 barn 456 789",
			want: DescriptionState{Label: LabelDeath, HasApplicant: true, ChildIDs: []string{"456", "789"}},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got := ParseDescription(LabelDeath, tc.text)
			s.Equal(tc.want, got)
			s.Equal(tc.text, got.String())
		})
	}
}

func (s *DescriptionSuite) TestParseThenMerge() {
	st := ParseDescription(LabelEmigration, "Utflytting: barn 111")
	st = st.AddApplicant()
	st = st.AddChild("222")
	s.Equal("Utflytting: bruker og 2 barn 111 222", st.String())
}
