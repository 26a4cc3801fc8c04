package routing

// Party says whether a routing match was driven by the case's own applicant
// or by a related child.
type Party string

const (
	PartyApplicant Party = "APPLICANT"
	PartyOther     Party = "OTHER"
)

// System is the set of back-ends a verdict points at.
type System string

const (
	SystemBoth   System = "both"
	SystemModern System = "modern"
	SystemLegacy System = "legacy"
	SystemNone   System = "none"
)

// Verdict is the outcome of a routing decision. It lives only for the current
// event; nothing persists it.
type Verdict struct {
	System System
	Party  Party
}

// partyLabels are the exact rendered party names; downstream descriptions
// are parsed by caseworker tooling, so they must not change.
var partyLabels = map[Party]string{
	PartyApplicant: "Bruker",
	PartyOther:     "Søsken",
}

// Annotation renders the verdict to its fixed annotation text. The empty
// string means no marking is needed; either system may pick the case up.
func (v Verdict) Annotation() string {
	switch v.System {
	case SystemBoth:
		return partyLabels[v.Party] + " har sak i både Infotrygd og BA-sak"
	case SystemModern:
		return partyLabels[v.Party] + " har sak i BA-sak"
	case SystemLegacy:
		return partyLabels[v.Party] + " har sak i Infotrygd"
	default:
		return ""
	}
}
