package testsupport

import (
	"path/filepath"
	"testing"

	"asreval/internal/config"
)

// NewConfig produces a config seeded with a unique temp history directory so
// tests never touch the user's real run store.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.History.Dir = filepath.Join(t.TempDir(), "history")
	cfg.Output.Color = false
	return &cfg
}
