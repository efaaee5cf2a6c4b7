package impl

import (
	"io"
	"log/slog"

	"safewallet/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a fully defaulted config with the demo catalogue disabled.
func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Wallet.SeedDemoItems = false

	return cfg
}
