package memory

import (
	"io"
	"log/slog"

	"atlas/config"
)

// newSeededStore builds a store loaded with the sample dataset.
func newSeededStore() *Store {
	cfg := &config.Config{Seed: &config.SeedConfig{Enabled: true}}

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newEmptyStore builds a store with no data at all.
func newEmptyStore() *Store {
	cfg := &config.Config{}

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
