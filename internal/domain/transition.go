package domain

import "time"

// Transition validates a requested status change and, when legal, returns
// the updated record together with the ordered intent list the caller must
// dispatch after persisting the record.
//
// It is a pure function: it performs no I/O, never mutates its input, and
// identical inputs always produce identical outputs. Timestamps are stamped
// from the now argument. On an illegal transition the input record is
// returned unchanged with no intents and an *IllegalTransitionError.
func Transition(rec Record, target Status, actor Actor, now time.Time) (Record, []Intent, error) {
	if !CanTransition(rec.Status, target) {
		return rec, nil, &IllegalTransitionError{From: rec.Status, To: target}
	}

	next := rec
	next.Status = target

	// Workflow timestamps are monotonic: stamped on first arrival, never
	// cleared or overwritten by later transitions.
	switch target {
	case StatusOffered:
		if next.OfferSentAt.IsZero() {
			next.OfferSentAt = now
		}
	case StatusOfferAccepted, StatusOfferRejected:
		if next.OfferRespondedAt.IsZero() {
			next.OfferRespondedAt = now
		}
	case StatusHired:
		if next.HiredAt.IsZero() {
			next.HiredAt = now
		}
	}

	return next, intentsFor(next, target), nil
}
