package workitem

import (
	"fmt"
	"strings"
)

// Label prefixes a life-event review description and names the event class.
type Label string

const (
	LabelDeath         Label = "Dødsfall"
	LabelMaritalChange Label = "Endring i sivilstand"
	LabelEmigration    Label = "Utflytting"
)

// DescriptionState is the parsed form of a review-item description. The
// rendered grammar is "<Label>: [bruker][ og ][<N> barn <id> <id> ...]"
// where the count is omitted for a single child.
type DescriptionState struct {
	Label        Label
	HasApplicant bool
	ChildIDs     []string
}

// ParseDescription recovers the state encoded in text. Unrecognized
// fragments are dropped rather than rejected, so a description the
// grammar cannot fully account for still merges cleanly.
func ParseDescription(label Label, text string) DescriptionState {
	st := DescriptionState{Label: label}

	rest := strings.TrimPrefix(text, string(label))
	rest = strings.TrimPrefix(rest, ":")

	inChildren := false
	for _, tok := range strings.Fields(rest) {
		switch {
		case inChildren:
			st.addChild(tok)
		case tok == "bruker":
			st.HasApplicant = true
		case tok == "barn":
			inChildren = true
		}
	}
	return st
}

// String renders the canonical description for the state.
func (s DescriptionState) String() string {
	var b strings.Builder
	b.WriteString(string(s.Label))
	b.WriteString(":")

	if s.HasApplicant {
		b.WriteString(" bruker")
	}
	if len(s.ChildIDs) > 0 {
		if s.HasApplicant {
			b.WriteString(" og")
		}
		if len(s.ChildIDs) == 1 {
			b.WriteString(" barn")
		} else {
			fmt.Fprintf(&b, " %d barn", len(s.ChildIDs))
		}
		for _, id := range s.ChildIDs {
			b.WriteString(" ")
			b.WriteString(id)
		}
	}
	return b.String()
}

// AddApplicant marks the applicant as affected. Adding twice is a no-op.
func (s DescriptionState) AddApplicant() DescriptionState {
	s.HasApplicant = true
	return s
}

// AddChild records an affected child. Adding a known id is a no-op.
func (s DescriptionState) AddChild(id string) DescriptionState {
	out := s
	out.ChildIDs = append([]string(nil), s.ChildIDs...)
	out.addChild(id)
	return out
}

func (s *DescriptionState) addChild(id string) {
	for _, have := range s.ChildIDs {
		if have == id {
			return
		}
	}
	s.ChildIDs = append(s.ChildIDs, id)
}
