package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Store             string `toml:"store"`
	DataDir           string `toml:"data_dir"`
	DatabasePath      string `toml:"database_path"`
	BackendURL        string `toml:"backend_url"`
	AuthKey           string `toml:"auth_key"`
	HTTPTimeout       string `toml:"http_timeout"`
	TemplatesPath     string `toml:"templates_path"`
	WatchTemplates    *bool  `toml:"watch_templates"`
	NotifyOnRejection *bool  `toml:"notify_on_rejection"`
	LogFormat         string `toml:"log_format"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.appflow/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".appflow", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", fc.Store, &cfg.StoreKind)
	s.setString("data-dir", fc.DataDir, &cfg.DataDir)
	s.setString("db-path", fc.DatabasePath, &cfg.DatabasePath)
	s.setString("backend-url", fc.BackendURL, &cfg.BackendURL)
	s.setString("auth-key", fc.AuthKey, &cfg.AuthKey)
	s.setString("templates", fc.TemplatesPath, &cfg.TemplatesPath)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBool("watch-templates", fc.WatchTemplates, &cfg.WatchTemplates)
	s.setBool("notify-on-rejection", fc.NotifyOnRejection, &cfg.NotifyOnRejection)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
