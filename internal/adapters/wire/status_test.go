package wire

import (
	"errors"
	"testing"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Status
	}{
		{"applied", domain.StatusApplied},
		{"Applied", domain.StatusApplied},
		{"", domain.StatusApplied},
		{"pending", domain.StatusApplied},
		{"under_review", domain.StatusUnderReview},
		{"Under Review", domain.StatusUnderReview},
		{"in review", domain.StatusUnderReview},
		{"REVIEWING", domain.StatusUnderReview},
		{"offered", domain.StatusOffered},
		{"Offered", domain.StatusOffered},
		{"accepted", domain.StatusOfferAccepted},
		{"offer accepted", domain.StatusOfferAccepted},
		{"offer_accepted", domain.StatusOfferAccepted},
		{"Offer_Accepted", domain.StatusOfferAccepted},
		{"declined", domain.StatusOfferRejected},
		{"Offer Rejected", domain.StatusOfferRejected},
		{"offer_rejected", domain.StatusOfferRejected},
		{"rejected", domain.StatusRejected},
		{"Rejected", domain.StatusRejected},
		{"hired", domain.StatusHired},
		{"HIRED", domain.StatusHired},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	got, err := ParseStatus("withdrawn")

	if got != domain.StatusApplied {
		t.Errorf("ParseStatus fallback = %s, want Applied", got)
	}
	var use *domain.UnknownStatusError
	if !errors.As(err, &use) {
		t.Fatalf("error = %v, want UnknownStatusError", err)
	}
	if use.Value != "withdrawn" {
		t.Errorf("error value = %q, want %q", use.Value, "withdrawn")
	}
	if !errors.Is(err, domain.ErrUnknownStatus) {
		t.Error("error does not match ErrUnknownStatus")
	}
}

func TestFormatStatus_RoundTrip(t *testing.T) {
	statuses := []domain.Status{
		domain.StatusApplied, domain.StatusUnderReview, domain.StatusOffered,
		domain.StatusOfferAccepted, domain.StatusOfferRejected,
		domain.StatusHired, domain.StatusRejected,
	}

	for _, s := range statuses {
		back, err := ParseStatus(FormatStatus(s))
		if err != nil {
			t.Errorf("round trip %s: %v", s, err)
			continue
		}
		if back != s {
			t.Errorf("round trip %s came back as %s", s, back)
		}
	}
}
