package ports

import (
	"context"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

// Store handles application record persistence.
// Implementations must serialize concurrent writes to the same record.
type Store interface {
	// Load retrieves the record with the given id.
	// Returns domain.ErrNotFound if no such record exists.
	Load(ctx context.Context, id string) (domain.Record, error)

	// Save persists the record if and only if the stored status still
	// equals expect. Returns domain.ErrConflict when the optimistic check
	// fails, so callers can reload and report the losing transition.
	Save(ctx context.Context, rec domain.Record, expect domain.Status) error
}

// RecordCreator is implemented by stores that can also mint new records.
// Creation is a shell concern; the lifecycle core never creates records.
type RecordCreator interface {
	// Create persists a fresh record in the Applied state.
	Create(ctx context.Context, rec domain.Record) error
}

// RecordLister is implemented by stores that can enumerate records.
type RecordLister interface {
	// List returns all records, ordered by application time.
	List(ctx context.Context) ([]domain.Record, error)
}
