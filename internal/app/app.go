// Package app wires configuration, catalog, index and UI into the running
// program.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/launchpad/internal/catalog"
	"github.com/atomicstack/launchpad/internal/format/table"
	"github.com/atomicstack/launchpad/internal/history"
	"github.com/atomicstack/launchpad/internal/index"
	"github.com/atomicstack/launchpad/internal/logging"
	"github.com/atomicstack/launchpad/internal/logging/events"
	"github.com/atomicstack/launchpad/internal/search"
	"github.com/atomicstack/launchpad/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Dirs        []string
	HistoryPath string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	List        bool
}

// DefaultDirs returns the standard descriptor directories, system paths
// before the per-user one so the system copy of a name wins deduplication.
// The per-user directory is omitted when the home cannot be resolved.
func DefaultDirs() []string {
	dirs := []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	return dirs
}

// Run bootstraps the catalog, fuzzy index and rank table, then executes the
// Bubble Tea program. When an entry was launched its name is appended to the
// history file after the program exits.
func Run(cfg Config) error {
	dirs := cfg.Dirs
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}

	start := time.Now()
	store, err := catalog.Load(dirs)
	if err != nil {
		logging.Error(fmt.Errorf("catalog: %w", err))
		events.Catalog.Skipped(err.Error())
	}
	if store.Len() == 0 {
		return fmt.Errorf("no launchable entries under %s", strings.Join(dirs, ", "))
	}
	events.Catalog.Loaded(store.Len(), dirs, time.Since(start))

	start = time.Now()
	tree := index.New(store.Names())
	events.Catalog.IndexBuilt(tree.Len(), time.Since(start))

	historyPath := cfg.HistoryPath
	if historyPath == "" {
		historyPath, err = history.DefaultPath()
		if err != nil {
			logging.Error(fmt.Errorf("history: %w", err))
		}
	}
	ranks := history.Ranks{}
	if historyPath != "" {
		ranks, err = history.Load(historyPath)
		if err != nil {
			logging.Error(fmt.Errorf("history: %w", err))
			ranks = history.Ranks{}
		}
		events.Catalog.RanksLoaded(len(ranks), historyPath)
	}

	if cfg.List {
		return runList(store, ranks, os.Stdout)
	}

	engine := search.NewEngine(store, tree, ranks)
	model := ui.NewModel(store, engine, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}

	finished, ok := final.(*ui.Model)
	if !ok || finished.Launched() == nil {
		events.App.Exit("cancel")
		return nil
	}
	entry := finished.Launched()
	if err := history.Append(historyPath, entry.Name); err != nil {
		logging.Error(fmt.Errorf("history: %w", err))
	} else {
		events.Launch.Recorded(entry.Name, ranks.Count(entry.Name)+1)
	}
	events.App.Exit("launch")
	return nil
}

// runList prints the catalog as a table: name, recorded launch count, raw
// exec template.
func runList(store *catalog.Store, ranks history.Ranks, w io.Writer) error {
	rows := make([][]string, 0, store.Len()+1)
	rows = append(rows, []string{"NAME", "COUNT", "EXEC"})
	for i := 0; i < store.Len(); i++ {
		entry := store.At(i)
		rows = append(rows, []string{entry.Name, strconv.Itoa(ranks.Count(entry.Name)), entry.Exec})
	}
	alignments := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}
	for _, line := range table.Format(rows, alignments) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
