package impl

import (
	"io"
	"log/slog"
	"time"

	"tienda/config"
)

// newDiscardLogger returns a logger that writes nowhere, for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a minimal configuration for service tests.
func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.App.URL = "http://localhost:8080"
	cfg.PasswordReset = &config.PasswordResetConfig{
		TTL:        time.Hour,
		ExposeCode: true,
	}

	return cfg
}
