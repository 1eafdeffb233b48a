// Package app orchestrates the lifecycle core against the store and
// notifier ports: load, pure transition, persist, then dispatch.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
)

// EventEmitter is called after a transition has been persisted.
type EventEmitter interface {
	OnTransition(rec domain.Record, previous domain.Status, actor domain.Actor)
}

// IntentHook can rewrite the intent list before dispatch. Used to apply
// template overrides and the optional rejection notification.
type IntentHook func(rec domain.Record, intents []domain.Intent) []domain.Intent

// Service applies status transitions to stored records.
//
// The ordering contract: the record is persisted before any intent is
// dispatched, and if persistence fails nothing is dispatched. Dispatch
// failures are logged and never roll the record back (at-most-once).
type Service struct {
	store    ports.Store
	notifier ports.Notifier
	logger   ports.Logger
	emitter  EventEmitter
	hook     IntentHook
	now      func() time.Time
}

// NewService creates a transition service. notifier, emitter and hook may
// be nil; now defaults to time.Now when nil.
func NewService(store ports.Store, notifier ports.Notifier, logger ports.Logger, emitter EventEmitter, hook IntentHook, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
		emitter:  emitter,
		hook:     hook,
		now:      now,
	}
}

// Transition moves the record with the given id to the target status.
//
// Returns the updated record on success. Returns the unmodified record and
// an *domain.IllegalTransitionError when the transition is not legal,
// including the case where a concurrent transition won the race: the losing
// caller sees an IllegalTransitionError naming the record's committed
// status as the source.
func (s *Service) Transition(ctx context.Context, id string, target domain.Status, actor domain.Actor) (domain.Record, error) {
	rec, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}

	next, intents, err := domain.Transition(rec, target, actor, s.now().UTC())
	if err != nil {
		s.logger.Warn("transition rejected",
			ports.String("application_id", id),
			ports.String("from", rec.Status.String()),
			ports.String("to", target.String()),
			ports.String("actor", string(actor)),
		)
		return rec, err
	}

	if err := s.store.Save(ctx, next, rec.Status); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return s.reportConflict(ctx, id, rec, target)
		}
		return rec, err
	}

	s.logger.Info("status transition",
		ports.String("application_id", id),
		ports.String("from", rec.Status.String()),
		ports.String("to", next.Status.String()),
		ports.String("actor", string(actor)),
		ports.Bool("contact_details_visible", next.ContactDetailsVisible()),
	)
	if s.emitter != nil {
		s.emitter.OnTransition(next, rec.Status, actor)
	}

	s.dispatch(ctx, next, intents)
	return next, nil
}

// Get loads a record without modifying it.
func (s *Service) Get(ctx context.Context, id string) (domain.Record, error) {
	return s.store.Load(ctx, id)
}

// reportConflict reloads the record after a lost optimistic-concurrency
// race and surfaces the losing transition as illegal from the committed
// status.
func (s *Service) reportConflict(ctx context.Context, id string, stale domain.Record, target domain.Status) (domain.Record, error) {
	current, err := s.store.Load(ctx, id)
	if err != nil {
		return stale, domain.ErrConflict
	}
	s.logger.Warn("transition lost race",
		ports.String("application_id", id),
		ports.String("requested_from", stale.Status.String()),
		ports.String("committed", current.Status.String()),
		ports.String("to", target.String()),
	)
	return current, &domain.IllegalTransitionError{From: current.Status, To: target}
}

// dispatch delivers intents best-effort, after the record is durable.
func (s *Service) dispatch(ctx context.Context, rec domain.Record, intents []domain.Intent) {
	if s.hook != nil {
		intents = s.hook(rec, intents)
	}
	if s.notifier == nil {
		return
	}
	for _, intent := range intents {
		if err := s.notifier.Dispatch(ctx, intent); err != nil {
			s.logger.Error("notification dispatch failed",
				ports.String("application_id", intent.ApplicationID),
				ports.String("template_id", intent.TemplateID),
				ports.String("audience", string(intent.Audience)),
				ports.Err(err),
			)
		}
	}
}

// noopLogger keeps the service usable when no logger is configured.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...ports.Field) {}
func (noopLogger) Info(msg string, fields ...ports.Field)  {}
func (noopLogger) Warn(msg string, fields ...ports.Field)  {}
func (noopLogger) Error(msg string, fields ...ports.Field) {}
