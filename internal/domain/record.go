package domain

import "time"

// Record represents a single internship application under lifecycle
// management. It uses value semantics: Transition returns a new Record and
// never mutates its input.
type Record struct {
	// ID is the opaque application identifier, immutable after creation.
	ID string

	// Status is the current lifecycle status.
	Status Status

	// AppliedAt is set once when the candidate submits the application.
	AppliedAt time.Time

	// OfferSentAt is set exactly when the status becomes Offered.
	// Zero means the application has never been offered.
	OfferSentAt time.Time

	// OfferRespondedAt is set exactly when the status becomes
	// OfferAccepted or OfferRejected.
	OfferRespondedAt time.Time

	// HiredAt is set exactly when the status becomes Hired.
	HiredAt time.Time
}

// NewRecord creates a fresh application record in the Applied state.
func NewRecord(id string, appliedAt time.Time) Record {
	return Record{
		ID:        id,
		Status:    StatusApplied,
		AppliedAt: appliedAt,
	}
}

// ContactDetailsVisible reports whether the record's contact details may be
// shown to the hiring company. Derived from the status, never stored.
func (r Record) ContactDetailsVisible() bool {
	return ContactDetailsVisible(r.Status)
}
