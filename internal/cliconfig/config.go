// Package cliconfig holds the CLI-facing configuration for appflow with the
// usual precedence: flags > environment > config file > defaults.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultBackendURL is the default marketplace API endpoint.
const DefaultBackendURL = "https://api.i-intern.com"

// Store kinds selectable via the store setting.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreREST   = "rest"
)

// Config holds CLI configuration for appflow.
type Config struct {
	// StoreKind selects the record store: sqlite, file or rest.
	StoreKind string

	// DataDir is the base directory for local stores and state.
	DataDir string

	// DatabasePath is the SQLite database file. Derived from DataDir
	// when left empty.
	DatabasePath string

	// BackendURL and AuthKey configure the rest store and notifier.
	BackendURL string
	AuthKey    string

	HTTPTimeout time.Duration

	// TemplatesPath points at the notification policy TOML file.
	TemplatesPath  string
	WatchTemplates bool

	// NotifyOnRejection enables the otherwise-silent rejection
	// notification.
	NotifyOnRejection bool

	// LogFormat is "console" or "json".
	LogFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		StoreKind:   StoreSQLite,
		DataDir:     defaultDataDir(),
		BackendURL:  DefaultBackendURL,
		HTTPTimeout: 15 * time.Second,
		LogFormat:   "console",
		AuthKey:     os.Getenv("APPFLOW_AUTH_KEY"),
	}
}

func defaultDataDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".appflow")
	}
	return "."
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	switch c.StoreKind {
	case StoreSQLite, StoreFile, StoreREST:
	case "":
		c.StoreKind = StoreSQLite
	default:
		return fmt.Errorf("store must be one of sqlite, file, rest (got %q)", c.StoreKind)
	}

	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(c.DataDir, "appflow.db")
	}

	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	// Ensure no trailing slash
	if len(c.BackendURL) > 0 && c.BackendURL[len(c.BackendURL)-1] == '/' {
		c.BackendURL = c.BackendURL[:len(c.BackendURL)-1]
	}

	if c.StoreKind == StoreREST && c.AuthKey == "" {
		return fmt.Errorf("auth-key is required for the rest store")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive")
	}

	switch c.LogFormat {
	case "console", "json":
	case "":
		c.LogFormat = "console"
	default:
		return fmt.Errorf("log-format must be console or json (got %q)", c.LogFormat)
	}

	if c.WatchTemplates && c.TemplatesPath == "" {
		return fmt.Errorf("templates path is required when watching templates")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*dst = false
		return
	}
	*dst = b
}
