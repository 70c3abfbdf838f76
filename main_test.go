package main

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/launchpad/internal/app"
	"github.com/atomicstack/launchpad/internal/config"
)

func TestStartupPayloadKeepsExplicitConfig(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Dirs:        []string{"/tmp/apps"},
			HistoryPath: "history.log",
			Width:       80,
			Height:      24,
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags:   map[string]string{"dirs": "/tmp/apps", "width": "80"},
		Args:    []string{"-dirs", "/tmp/apps"},
	}

	payload := startupPayload(cfg)

	dirs, ok := payload["dirs"].([]string)
	if !ok || len(dirs) != 1 || dirs[0] != "/tmp/apps" {
		t.Fatalf("expected explicit dirs kept, got %v", payload["dirs"])
	}
	if payload["history"] != "history.log" {
		t.Fatalf("expected explicit history path kept, got %v", payload["history"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["dirs"] != "/tmp/apps" || flags["width"] != "80" {
		t.Fatalf("expected parsed flags echoed, got %v", payload["flags"])
	}
	if payload["trace"] != true || payload["logFile"] != "trace.log" {
		t.Fatalf("expected logging settings in payload, got trace=%v logFile=%v",
			payload["trace"], payload["logFile"])
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal probe in payload")
	}
}

func TestStartupPayloadResolvesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	payload := startupPayload(config.Config{})

	dirs, ok := payload["dirs"].([]string)
	if !ok || len(dirs) < 2 {
		t.Fatalf("expected default search directories, got %v", payload["dirs"])
	}
	if dirs[0] != "/usr/share/applications" {
		t.Fatalf("expected system directory first, got %v", dirs)
	}
	want := filepath.Join("/tmp/xdg-data", "launchpad", "history")
	if payload["history"] != want {
		t.Fatalf("expected default history path %q, got %v", want, payload["history"])
	}
}

func TestProbeTerminalIsConsistent(t *testing.T) {
	info := probeTerminal()
	if info.Interactive && (!info.Stdin || !info.Stdout) {
		t.Fatalf("interactive requires both stdin and stdout terminals: %+v", info)
	}
	if !info.Stdout && (info.Width != 0 || info.Height != 0) {
		t.Fatalf("size must come from a stdout terminal only: %+v", info)
	}
	if info.Width < 0 || info.Height < 0 {
		t.Fatalf("unexpected negative geometry: %+v", info)
	}
}
