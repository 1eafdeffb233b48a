package wire

import (
	"time"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

// RecordPayload is the JSON shape of an application record on the wire and
// on disk. Field names follow the marketplace backend's API.
type RecordPayload struct {
	ID                    string  `json:"id"`
	Status                string  `json:"status"`
	AppliedDate           string  `json:"applied_date"`
	OfferSentDate         *string `json:"offer_sent_date"`
	OfferResponseDate     *string `json:"offer_response_date"`
	HiredDate             *string `json:"hired_date"`
	CanViewContactDetails bool    `json:"can_view_contact_details"`
}

// FromRecord converts a domain record to its wire form. The contact
// visibility flag is recomputed from the status, never copied from storage.
func FromRecord(rec domain.Record) RecordPayload {
	return RecordPayload{
		ID:                    rec.ID,
		Status:                FormatStatus(rec.Status),
		AppliedDate:           rec.AppliedAt.UTC().Format(time.RFC3339Nano),
		OfferSentDate:         optionalTime(rec.OfferSentAt),
		OfferResponseDate:     optionalTime(rec.OfferRespondedAt),
		HiredDate:             optionalTime(rec.HiredAt),
		CanViewContactDetails: rec.ContactDetailsVisible(),
	}
}

// ToRecord converts a wire payload to a domain record. An unknown status
// string falls back to Applied and surfaces a *domain.UnknownStatusError
// alongside the converted record; timestamp parse failures are reported the
// same way, with the offending field left unset.
func (p RecordPayload) ToRecord() (domain.Record, error) {
	status, statusErr := ParseStatus(p.Status)

	rec := domain.Record{
		ID:     p.ID,
		Status: status,
	}

	err := statusErr
	rec.AppliedAt, err = parseTime(p.AppliedDate, err)
	rec.OfferSentAt, err = parseOptionalTime(p.OfferSentDate, err)
	rec.OfferRespondedAt, err = parseOptionalTime(p.OfferResponseDate, err)
	rec.HiredAt, err = parseOptionalTime(p.HiredDate, err)

	return rec, err
}

func optionalTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func parseTime(raw string, prev error) (time.Time, error) {
	if raw == "" {
		return time.Time{}, prev
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		if prev != nil {
			return time.Time{}, prev
		}
		return time.Time{}, err
	}
	return t, prev
}

func parseOptionalTime(raw *string, prev error) (time.Time, error) {
	if raw == nil {
		return time.Time{}, prev
	}
	return parseTime(*raw, prev)
}
