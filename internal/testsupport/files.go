package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLines writes the given lines (newline terminated) to a file under the
// test's temp directory and returns its path.
func WriteLines(t testing.TB, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
