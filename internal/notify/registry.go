// Package notify applies notification policy on top of the intent lists the
// state machine produces: template-id overrides and the configurable
// rejection notification, with hot reload of the policy file.
package notify

import (
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

// fileRegistry is the TOML shape of the policy file.
type fileRegistry struct {
	NotifyOnRejection bool              `toml:"notify_on_rejection"`
	RejectedTemplate  string            `toml:"rejected_template"`
	Templates         map[string]string `toml:"templates"`
}

// Registry holds notification policy. The zero value (or NewRegistry) is a
// pass-through: default template ids, silent rejection. Safe for concurrent
// use; the watcher reloads it in place.
type Registry struct {
	mu                sync.RWMutex
	overrides         map[string]string
	notifyOnRejection bool
	rejectedTemplate  string
}

// DefaultRejectedTemplate is used when rejection notifications are enabled
// without naming a template.
const DefaultRejectedTemplate = "application_rejected"

// NewRegistry creates a pass-through registry.
func NewRegistry() *Registry {
	return &Registry{overrides: map[string]string{}}
}

// LoadFile replaces the registry contents from a TOML policy file.
func (r *Registry) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileRegistry
	if err := toml.Unmarshal(b, &fc); err != nil {
		return err
	}

	rejected := fc.RejectedTemplate
	if rejected == "" {
		rejected = DefaultRejectedTemplate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = fc.Templates
	if r.overrides == nil {
		r.overrides = map[string]string{}
	}
	r.notifyOnRejection = fc.NotifyOnRejection
	r.rejectedTemplate = rejected
	return nil
}

// SetNotifyOnRejection toggles the rejection notification without a file.
func (r *Registry) SetNotifyOnRejection(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifyOnRejection = enabled
	if r.rejectedTemplate == "" {
		r.rejectedTemplate = DefaultRejectedTemplate
	}
}

// Apply rewrites an intent list per the current policy. It never mutates
// its input and is shaped to serve as the transition service's intent hook.
func (r *Registry) Apply(rec domain.Record, intents []domain.Intent) []domain.Intent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Intent, 0, len(intents)+1)
	for _, intent := range intents {
		if replacement, ok := r.overrides[intent.TemplateID]; ok {
			intent.TemplateID = replacement
		}
		out = append(out, intent)
	}

	if rec.Status == domain.StatusRejected && r.notifyOnRejection {
		out = append(out, domain.Intent{
			Kind:          "notify",
			Audience:      domain.AudienceIntern,
			TemplateID:    r.rejectedTemplate,
			ApplicationID: rec.ID,
		})
	}
	return out
}
