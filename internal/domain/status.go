package domain

// Status represents the lifecycle status of an internship application.
type Status int

const (
	StatusApplied Status = iota
	StatusUnderReview
	StatusOffered
	StatusOfferAccepted
	StatusOfferRejected
	StatusHired
	StatusRejected
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusUnderReview:
		return "Under Review"
	case StatusOffered:
		return "Offered"
	case StatusOfferAccepted:
		return "Offer Accepted"
	case StatusOfferRejected:
		return "Offer Rejected"
	case StatusHired:
		return "Hired"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusApplied && s <= StatusRejected
}

// Terminal reports whether s has no legal outgoing transitions.
func (s Status) Terminal() bool {
	switch s {
	case StatusOfferRejected, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

// ContactDetailsVisible reports whether the applicant's contact information
// (email, phone) may be shown to the hiring company. The flag is always
// derived from the status; no code path stores it independently.
func ContactDetailsVisible(s Status) bool {
	return s == StatusOfferAccepted || s == StatusHired
}

// legalTargets is the transition table. A target absent from the source's
// set is illegal, including self-transitions and skips. Terminal statuses
// have no entry.
var legalTargets = map[Status][]Status{
	StatusApplied:       {StatusUnderReview, StatusRejected},
	StatusUnderReview:   {StatusOffered, StatusRejected},
	StatusOffered:       {StatusOfferAccepted, StatusOfferRejected},
	StatusOfferAccepted: {StatusHired},
}

// LegalTargets returns the set of statuses the application may move to from
// the given status. The returned slice is a copy; callers may mutate it.
func LegalTargets(from Status) []Status {
	targets := legalTargets[from]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether moving from one status to another is legal
// per the transition table.
func CanTransition(from, to Status) bool {
	for _, t := range legalTargets[from] {
		if t == to {
			return true
		}
	}
	return false
}
