package command

import (
	"time"

	"github.com/atomicstack/launchpad/internal/clip"
	"github.com/atomicstack/launchpad/internal/launcher"
	"github.com/atomicstack/launchpad/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// LaunchRequest names the catalog entry whose exec template should be
// spawned.
type LaunchRequest struct {
	Index int
	Name  string
	Exec  string
}

// LaunchResult reports a spawn outcome back to the update loop.
type LaunchResult struct {
	Index int
	Name  string
	Err   error
}

// Paste carries clipboard text fetched for a paste keystroke.
type Paste struct {
	Text string
	Err  error
}

// Bus runs the work the update loop must not block on: spawning the chosen
// entry and fetching clipboard contents. Both are wrapped into Bubble Tea
// commands that deliver their result as a message.
type Bus struct {
	spawn   func(string) error
	fetch   func(time.Duration) (string, error)
	timeout time.Duration
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{spawn: launcher.Spawn, fetch: clip.Fetch, timeout: clip.DefaultTimeout}
}

// Launch wraps the spawn into a Bubble Tea command while emitting trace logs.
func (b *Bus) Launch(req LaunchRequest) tea.Cmd {
	id := "launch:" + req.Name
	events.Command.Queue(id)
	return func() tea.Msg {
		args, err := launcher.Command(req.Exec)
		if err == nil {
			err = b.spawn(req.Exec)
		}
		if err != nil {
			events.Command.Error(id, err)
		} else {
			events.Launch.Spawned(req.Name, args[0])
		}
		return LaunchResult{Index: req.Index, Name: req.Name, Err: err}
	}
}

// FetchClipboard resolves the clipboard text off the update loop, bounded by
// the bus timeout so a stalled clipboard owner cannot wedge the program.
func (b *Bus) FetchClipboard() tea.Cmd {
	events.Command.Queue("paste")
	return func() tea.Msg {
		text, err := b.fetch(b.timeout)
		if err != nil {
			events.Command.Error("paste", err)
			return Paste{Err: err}
		}
		events.Command.Result("paste", "text")
		return Paste{Text: text}
	}
}
