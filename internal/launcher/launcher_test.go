package launcher

import (
	"os/exec"
	"testing"
)

func TestStripFieldCodes(t *testing.T) {
	cases := []struct {
		template string
		want     string
	}{
		{"firefox %u", "firefox "},
		{"nautilus %U --new-window", "nautilus  --new-window"},
		{"env FOO=1 app %f %F", "env FOO=1 app  "},
		{"plain-command", "plain-command"},
		{"trailing %", "trailing "},
		{"doubled %% percent", "doubled  percent"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripFieldCodes(tc.template); got != tc.want {
			t.Fatalf("StripFieldCodes(%q) = %q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestSplitArgsDropsEmptyTokens(t *testing.T) {
	args := SplitArgs("firefox  --new-window  example.org")
	if len(args) != 3 || args[0] != "firefox" || args[1] != "--new-window" || args[2] != "example.org" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestCommandStripsAndTokenizes(t *testing.T) {
	args, err := Command("firefox %u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args) != 1 || args[0] != "firefox" {
		t.Fatalf("expected [firefox], got %v", args)
	}
}

func TestCommandRejectsEmptyResult(t *testing.T) {
	for _, template := range []string{"", "%u", "%f %F", "   "} {
		if _, err := Command(template); err == nil {
			t.Fatalf("expected error for template %q", template)
		}
	}
}

func TestSpawnReportsUnknownBinary(t *testing.T) {
	if err := Spawn("launchpad-test-binary-that-does-not-exist"); err == nil {
		t.Fatalf("expected spawn error")
	}
}

func TestSpawnDetachesChild(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("skipping: true binary not available")
	}
	if err := Spawn("true %u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
