package ports

import (
	"context"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

// Notifier delivers notification intents to their audience.
// Delivery is best-effort: the caller persists the record before dispatching
// and a failed dispatch never rolls the record back.
type Notifier interface {
	// Dispatch delivers a single intent.
	Dispatch(ctx context.Context, intent domain.Intent) error
}
