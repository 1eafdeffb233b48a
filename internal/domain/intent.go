package domain

// Audience identifies which side of the marketplace a notification is
// addressed to.
type Audience string

const (
	AudienceCompany Audience = "company"
	AudienceIntern  Audience = "intern"
)

// Actor identifies who requested a transition. It only influences how the
// change is reported, never whether it is authorized; authorization is an
// external concern.
type Actor string

const (
	ActorCompany Actor = "company"
	ActorIntern  Actor = "intern"
)

// Notification template identifiers understood by the marketplace backend.
const (
	TemplateUnderReview   = "application_under_review"
	TemplateOfferSent     = "offer_sent"
	TemplateOfferAccepted = "offer_accepted"
	TemplateOfferDeclined = "offer_declined"
	TemplateHireConfirmed = "hire_confirmed"
)

// Intent describes a side effect a transition requires. The state machine
// only produces intents; the caller persists the record first and then
// dispatches them.
type Intent struct {
	// Kind is always "notify" for now.
	Kind string

	// Audience is the notification recipient side.
	Audience Audience

	// TemplateID names the notification template to render.
	TemplateID string

	// ApplicationID is the id of the record the intent relates to.
	ApplicationID string
}

// notifyIntent builds a notification intent for the given record.
func notifyIntent(rec Record, audience Audience, templateID string) Intent {
	return Intent{
		Kind:          "notify",
		Audience:      audience,
		TemplateID:    templateID,
		ApplicationID: rec.ID,
	}
}

// intentsFor returns the fixed, ordered intent list for arriving at the
// given status. A transition to Rejected produces no intent here; the notify
// package can append one when configured to.
func intentsFor(rec Record, target Status) []Intent {
	switch target {
	case StatusUnderReview:
		return []Intent{notifyIntent(rec, AudienceCompany, TemplateUnderReview)}
	case StatusOffered:
		// The intern learns about the offer; the company view mirrors it.
		return []Intent{
			notifyIntent(rec, AudienceIntern, TemplateOfferSent),
			notifyIntent(rec, AudienceCompany, TemplateOfferSent),
		}
	case StatusOfferAccepted:
		return []Intent{notifyIntent(rec, AudienceCompany, TemplateOfferAccepted)}
	case StatusOfferRejected:
		return []Intent{notifyIntent(rec, AudienceCompany, TemplateOfferDeclined)}
	case StatusHired:
		return []Intent{notifyIntent(rec, AudienceCompany, TemplateHireConfirmed)}
	default:
		return nil
	}
}
