package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forestsim/internal/config"
)

// WriteCSV writes lines to <CSVDir>/<name>.csv and returns the path.
func WriteCSV(t testing.TB, cfg *config.Config, name string, lines ...string) string {
	t.Helper()

	path := cfg.CSVPath(name)
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
