package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (APPFLOW_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", os.Getenv("APPFLOW_STORE"), &cfg.StoreKind)
	s.setString("data-dir", os.Getenv("APPFLOW_DATA_DIR"), &cfg.DataDir)
	s.setString("db-path", os.Getenv("APPFLOW_DB_PATH"), &cfg.DatabasePath)
	s.setString("backend-url", os.Getenv("APPFLOW_BACKEND_URL"), &cfg.BackendURL)
	s.setString("auth-key", os.Getenv("APPFLOW_AUTH_KEY"), &cfg.AuthKey)
	s.setString("templates", os.Getenv("APPFLOW_TEMPLATES"), &cfg.TemplatesPath)
	s.setString("log-format", os.Getenv("APPFLOW_LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setDuration("timeout", os.Getenv("APPFLOW_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBoolFromString("watch-templates", os.Getenv("APPFLOW_WATCH_TEMPLATES"), &cfg.WatchTemplates)
	s.setBoolFromString("notify-on-rejection", os.Getenv("APPFLOW_NOTIFY_ON_REJECTION"), &cfg.NotifyOnRejection)

	return nil
}
