package testsupport

import (
	"path/filepath"
	"testing"

	"forestsim/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.CSVDir = filepath.Join(base, "csv")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithSharedDir points data and CSV directories at the same location, which
// mirrors running the binary from a directory holding both file kinds.
func WithSharedDir() ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "forests")
		b.cfg.Paths.DataDir = dir
		b.cfg.Paths.CSVDir = dir
	}
}

// WithMinPlantingYear overrides the earliest planting year for random trees.
func WithMinPlantingYear(year int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Simulation.MinPlantingYear = year
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
