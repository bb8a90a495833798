package testsupport

import (
	"testing"

	"folderize/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a normalized default config with colours disabled and
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Output.Color = config.ColorNever
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize test config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return &cfg
}

// WithDryRun enables dry-run mode.
func WithDryRun() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.DryRun = true
	}
}

// WithKeepGoing continues batches past I/O faults.
func WithKeepGoing() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.KeepGoing = true
	}
}
