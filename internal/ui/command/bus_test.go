package command

import (
	"errors"
	"testing"
	"time"
)

func TestLaunchReportsSpawnSuccess(t *testing.T) {
	var spawned string
	b := &Bus{spawn: func(exec string) error {
		spawned = exec
		return nil
	}}

	msg := b.Launch(LaunchRequest{Index: 3, Name: "firefox", Exec: "firefox %u"})()
	result, ok := msg.(LaunchResult)
	if !ok {
		t.Fatalf("expected LaunchResult, got %T", msg)
	}
	if result.Index != 3 || result.Name != "firefox" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if spawned != "firefox %u" {
		t.Fatalf("expected spawn to receive the raw template, got %q", spawned)
	}
}

func TestLaunchReportsSpawnFailure(t *testing.T) {
	boom := errors.New("boom")
	b := &Bus{spawn: func(string) error { return boom }}

	msg := b.Launch(LaunchRequest{Index: 0, Name: "files", Exec: "files"})()
	result := msg.(LaunchResult)
	if !errors.Is(result.Err, boom) {
		t.Fatalf("expected spawn error to pass through, got %v", result.Err)
	}
}

func TestLaunchRejectsEmptyTemplate(t *testing.T) {
	spawnCalled := false
	b := &Bus{spawn: func(string) error {
		spawnCalled = true
		return nil
	}}

	msg := b.Launch(LaunchRequest{Name: "broken", Exec: "%u %F"})()
	result := msg.(LaunchResult)
	if result.Err == nil {
		t.Fatalf("expected an error for a template with no command")
	}
	if spawnCalled {
		t.Fatalf("expected spawn to be skipped when the template is empty")
	}
}

func TestFetchClipboardDeliversText(t *testing.T) {
	var gotTimeout time.Duration
	b := &Bus{
		fetch: func(timeout time.Duration) (string, error) {
			gotTimeout = timeout
			return "hello", nil
		},
		timeout: 250 * time.Millisecond,
	}

	msg := b.FetchClipboard()()
	paste, ok := msg.(Paste)
	if !ok {
		t.Fatalf("expected Paste, got %T", msg)
	}
	if paste.Text != "hello" || paste.Err != nil {
		t.Fatalf("unexpected paste: %+v", paste)
	}
	if gotTimeout != 250*time.Millisecond {
		t.Fatalf("expected the bus timeout to bound the fetch, got %v", gotTimeout)
	}
}

func TestFetchClipboardReportsError(t *testing.T) {
	b := &Bus{fetch: func(time.Duration) (string, error) {
		return "", errors.New("no clipboard owner")
	}}

	msg := b.FetchClipboard()()
	paste := msg.(Paste)
	if paste.Err == nil {
		t.Fatalf("expected the fetch error to surface")
	}
	if paste.Text != "" {
		t.Fatalf("expected no text on error, got %q", paste.Text)
	}
}
