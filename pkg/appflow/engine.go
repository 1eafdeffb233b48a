package appflow

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/fs"
	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/rest"
	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/sqlite"
	"github.com/Internmain07/I-INTERN-sub000/internal/app"
	"github.com/Internmain07/I-INTERN-sub000/internal/cliconfig"
	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
	"github.com/Internmain07/I-INTERN-sub000/internal/notify"
	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
	"github.com/Internmain07/I-INTERN-sub000/pkg/log"
)

// Engine applies lifecycle transitions to stored application records and
// dispatches the resulting notifications. Safe for concurrent use.
type Engine struct {
	config   Config
	opts     options
	service  *app.Service
	store    ports.Store
	registry *notify.Registry
	logger   ports.Logger

	mu       sync.Mutex
	closers  []func() error
	watchEnd context.CancelFunc
}

// New creates a new Engine with the given configuration.
// Returns an error if configuration is invalid or the store cannot open.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var logger ports.Logger
	if o.logger != nil {
		logger = o.logger
	} else {
		logger = log.NewNoopLogger()
	}

	e := &Engine{
		config:   cfg,
		opts:     o,
		registry: notify.NewRegistry(),
		logger:   logger,
	}

	if cfg.NotifyOnRejection {
		e.registry.SetNotifyOnRejection(true)
	}
	if cfg.TemplatesPath != "" && !cfg.WatchTemplates {
		// With watching enabled the watcher performs the initial load.
		if err := e.registry.LoadFile(cfg.TemplatesPath); err != nil {
			logger.Warn("template registry load failed",
				ports.String("path", cfg.TemplatesPath),
				ports.Err(err),
			)
		}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	restClient := rest.NewClient(httpClient, cfg.BackendURL, cfg.AuthKey, logger)

	store := o.store
	if store == nil {
		var err error
		store, err = openStore(cfg, restClient, e)
		if err != nil {
			return nil, err
		}
	}
	e.store = store

	notifier := o.notifier
	if notifier == nil && cfg.AuthKey != "" {
		notifier = rest.NewNotifier(restClient)
	}

	e.service = app.NewService(store, notifier, logger, o.emitter, e.registry.Apply, o.clock)
	return e, nil
}

// openStore builds the store selected by cfg.StoreKind and registers any
// cleanup with the engine.
func openStore(cfg Config, restClient *rest.Client, e *Engine) (ports.Store, error) {
	switch cfg.StoreKind {
	case cliconfig.StoreSQLite:
		store, err := sqlite.Open(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		e.closers = append(e.closers, store.Close)
		return store, nil
	case cliconfig.StoreFile:
		return fs.NewStore(cfg.DataDir), nil
	case cliconfig.StoreREST:
		return rest.NewStore(restClient), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.StoreKind)
	}
}

// Start launches the template watcher when Config.WatchTemplates is set.
// It returns immediately; the watcher stops when ctx is canceled or Close
// is called.
func (e *Engine) Start(ctx context.Context) {
	if !e.config.WatchTemplates {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.watchEnd != nil {
		return
	}

	watchCtx, cancel := context.WithCancel(ctx)
	e.watchEnd = cancel
	watcher := notify.NewWatcher(e.registry, e.config.TemplatesPath, e.logger)
	go watcher.Run(watchCtx)
}

// Close stops the template watcher and releases store resources.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.watchEnd != nil {
		e.watchEnd()
		e.watchEnd = nil
	}

	var firstErr error
	for _, closer := range e.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	e.closers = nil
	return firstErr
}

// Transition moves the application with the given id to the target status.
// See the package documentation for the persistence and dispatch contract.
func (e *Engine) Transition(ctx context.Context, id string, target Status, actor Actor) (Record, error) {
	return e.service.Transition(ctx, id, target, actor)
}

// Get loads an application record without modifying it.
func (e *Engine) Get(ctx context.Context, id string) (Record, error) {
	return e.service.Get(ctx, id)
}

// Create mints a new application record in the Applied state.
// Only supported by stores that can create records (sqlite, file).
func (e *Engine) Create(ctx context.Context) (Record, error) {
	creator, ok := e.store.(ports.RecordCreator)
	if !ok {
		return Record{}, fmt.Errorf("%s store cannot create records", e.config.StoreKind)
	}

	rec := domain.NewRecord(uuid.NewString(), e.opts.clock().UTC())
	if err := creator.Create(ctx, rec); err != nil {
		return Record{}, err
	}

	e.logger.Info("application created",
		ports.String("application_id", rec.ID),
		ports.Time("applied_at", rec.AppliedAt),
	)
	return rec, nil
}

// List returns all stored records ordered by application time.
// Only supported by stores that can enumerate records (sqlite, file).
func (e *Engine) List(ctx context.Context) ([]Record, error) {
	lister, ok := e.store.(ports.RecordLister)
	if !ok {
		return nil, fmt.Errorf("%s store cannot list records", e.config.StoreKind)
	}
	return lister.List(ctx)
}
