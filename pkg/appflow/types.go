package appflow

import (
	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/wire"
	"github.com/Internmain07/I-INTERN-sub000/internal/app"
	"github.com/Internmain07/I-INTERN-sub000/internal/cliconfig"
	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
)

// Config holds the configuration for the lifecycle engine.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// DefaultConfig returns a Config with default values.
var DefaultConfig = cliconfig.DefaultConfig

// Store kinds selectable via Config.StoreKind.
const (
	StoreSQLite = cliconfig.StoreSQLite
	StoreFile   = cliconfig.StoreFile
	StoreREST   = cliconfig.StoreREST
)

// Domain types re-exported for embedding applications.
type (
	// Status is the closed application status enumeration.
	Status = domain.Status

	// Record is a single internship application.
	Record = domain.Record

	// Intent describes a notification side effect of a transition.
	Intent = domain.Intent

	// Actor identifies who requested a transition.
	Actor = domain.Actor

	// Audience identifies a notification recipient side.
	Audience = domain.Audience

	// Store is the record persistence port.
	Store = ports.Store

	// Notifier is the notification delivery port.
	Notifier = ports.Notifier

	// EventEmitter receives a callback after each persisted transition.
	EventEmitter = app.EventEmitter
)

// Status values.
const (
	StatusApplied       = domain.StatusApplied
	StatusUnderReview   = domain.StatusUnderReview
	StatusOffered       = domain.StatusOffered
	StatusOfferAccepted = domain.StatusOfferAccepted
	StatusOfferRejected = domain.StatusOfferRejected
	StatusHired         = domain.StatusHired
	StatusRejected      = domain.StatusRejected
)

// Actors.
const (
	ActorCompany = domain.ActorCompany
	ActorIntern  = domain.ActorIntern
)

// Sentinel errors, checkable with errors.Is.
var (
	ErrIllegalTransition = domain.ErrIllegalTransition
	ErrUnknownStatus     = domain.ErrUnknownStatus
	ErrConflict          = domain.ErrConflict
	ErrNotFound          = domain.ErrNotFound
)

// ContactDetailsVisible reports whether contact information may be shown to
// the hiring company for the given status.
func ContactDetailsVisible(s Status) bool {
	return domain.ContactDetailsVisible(s)
}

// LegalTargets returns the statuses an application may move to from the
// given status.
func LegalTargets(from Status) []Status {
	return domain.LegalTargets(from)
}

// ParseStatus canonicalizes an externally-sourced status string; see the
// boundary contract on the wire package.
func ParseStatus(raw string) (Status, error) {
	return wire.ParseStatus(raw)
}

// FormatStatus serializes a status to its canonical external form.
func FormatStatus(s Status) string {
	return wire.FormatStatus(s)
}
