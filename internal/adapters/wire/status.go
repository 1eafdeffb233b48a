// Package wire translates between the closed domain enumeration and the
// loosely-normalized representations used by the marketplace backend.
//
// The backend stores status as free-form strings (mixed case, spaces vs.
// underscores, synonyms such as "accepted" for "offer_accepted"). All of
// that normalization lives here so the state machine itself only ever sees
// domain.Status values.
package wire

import (
	"strings"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

// ParseStatus canonicalizes an externally-sourced status string.
//
// Matching is case-insensitive and treats spaces, underscores and hyphens
// as equivalent. Any string containing "review" maps to UnderReview; the
// synonyms "accepted", "offer accepted" and "offer_accepted" all map to
// OfferAccepted. An unrecognized value returns StatusApplied together with
// a *domain.UnknownStatusError; callers log the anomaly and keep the
// fallback rather than failing the request.
func ParseStatus(raw string) (domain.Status, error) {
	norm := normalize(raw)

	if strings.Contains(norm, "review") {
		return domain.StatusUnderReview, nil
	}

	switch norm {
	case "", "applied", "pending":
		return domain.StatusApplied, nil
	case "offered":
		return domain.StatusOffered, nil
	case "accepted", "offer accepted":
		return domain.StatusOfferAccepted, nil
	case "declined", "offer rejected", "offer declined":
		return domain.StatusOfferRejected, nil
	case "hired":
		return domain.StatusHired, nil
	case "rejected":
		return domain.StatusRejected, nil
	}

	return domain.StatusApplied, &domain.UnknownStatusError{Value: raw}
}

// FormatStatus serializes a status to the backend's canonical snake_case
// form.
func FormatStatus(s domain.Status) string {
	switch s {
	case domain.StatusApplied:
		return "applied"
	case domain.StatusUnderReview:
		return "under_review"
	case domain.StatusOffered:
		return "offered"
	case domain.StatusOfferAccepted:
		return "offer_accepted"
	case domain.StatusOfferRejected:
		return "offer_rejected"
	case domain.StatusHired:
		return "hired"
	case domain.StatusRejected:
		return "rejected"
	default:
		return "applied"
	}
}

// normalize lowercases the input and collapses underscore/hyphen separators
// to single spaces.
func normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
