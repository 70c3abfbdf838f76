package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDescriptor writes stem+".desktop" under dir with one raw line per
// element of lines, in order. Ordering matters to the parser, so lines are
// positional rather than a map.
func WriteDescriptor(t *testing.T, dir, stem string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, stem+".desktop")
	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write descriptor %s: %v", path, err)
	}
	return path
}

// WriteApp writes a minimal descriptor carrying just Name and Exec.
func WriteApp(t *testing.T, dir, stem, name, exec string) string {
	t.Helper()
	return WriteDescriptor(t, dir, stem, "Name="+name, "Exec="+exec)
}
