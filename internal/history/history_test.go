package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsEmptyRanks(t *testing.T) {
	ranks, err := Load(filepath.Join(t.TempDir(), "history"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ranks.Empty() {
		t.Fatalf("expected empty ranks, got %v", ranks)
	}
}

func TestLoadCountsPerDistinctLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	content := "firefox\nfiles\nfirefox\nfirefox\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write history: %v", err)
	}
	ranks, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ranks.Count("firefox"); got != 3 {
		t.Fatalf("expected firefox count 3, got %d", got)
	}
	if got := ranks.Count("files"); got != 1 {
		t.Fatalf("expected files count 1, got %d", got)
	}
	if got := ranks.Count("terminal"); got != 0 {
		t.Fatalf("expected zero count for absent entry, got %d", got)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history")
	if err := Append(path, "firefox"); err != nil {
		t.Fatalf("append: %v", err)
	}
	before, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Append(path, "firefox"); err != nil {
		t.Fatalf("append: %v", err)
	}
	after, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if after.Count("firefox") != before.Count("firefox")+1 {
		t.Fatalf("expected count %d, got %d", before.Count("firefox")+1, after.Count("firefox"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "firefox\nfirefox\n" {
		t.Fatalf("unexpected log contents %q", string(data))
	}
}

func TestDefaultPathHonoursXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-data", "launchpad", "history")
	if path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}
}
