package appflow

import (
	"time"

	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
	"github.com/Internmain07/I-INTERN-sub000/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// Option configures optional behavior of the Engine.
type Option func(*options)

// options holds the optional configuration for an Engine instance.
type options struct {
	httpClient HTTPClient
	logger     Logger
	store      Store
	notifier   Notifier
	emitter    EventEmitter
	clock      func() time.Time
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		clock: time.Now,
	}
}

// WithHTTPClient sets a custom HTTP client for backend communication.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore overrides the store selected by Config.StoreKind.
func WithStore(store Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithNotifier overrides the notifier. Pass nil to disable dispatch.
func WithNotifier(notifier Notifier) Option {
	return func(o *options) {
		o.notifier = notifier
	}
}

// WithEventEmitter sets a handler called synchronously after each persisted
// transition.
func WithEventEmitter(emitter EventEmitter) Option {
	return func(o *options) {
		o.emitter = emitter
	}
}

// WithClock sets the time source used to stamp workflow timestamps.
// Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
