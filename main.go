package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/launchpad/internal/app"
	"github.com/atomicstack/launchpad/internal/config"
	"github.com/atomicstack/launchpad/internal/history"
	"github.com/atomicstack/launchpad/internal/logging"
	"github.com/atomicstack/launchpad/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupPayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupPayload records what this run will actually work with: the parsed
// flags, the search directories and history path after default resolution,
// and whether the terminal can host the full-screen window. Empty config
// values resolve to the same defaults app.Run applies.
func startupPayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"dirs":     resolvedDirs(cfg.App),
		"history":  resolvedHistoryPath(cfg.App),
		"terminal": probeTerminal(),
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

func resolvedDirs(cfg app.Config) []string {
	if len(cfg.Dirs) > 0 {
		return cfg.Dirs
	}
	return app.DefaultDirs()
}

func resolvedHistoryPath(cfg app.Config) string {
	if cfg.HistoryPath != "" {
		return cfg.HistoryPath
	}
	path, err := history.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}

// terminalInfo is the launcher's view of the TTY: the window needs an
// interactive stdin/stdout pair, and its auto-sized geometry comes from
// stdout when -width/-height do not override it.
type terminalInfo struct {
	Interactive bool `json:"interactive"`
	Stdin       bool `json:"stdin"`
	Stdout      bool `json:"stdout"`
	Width       int  `json:"width,omitempty"`
	Height      int  `json:"height,omitempty"`
}

func probeTerminal() terminalInfo {
	info := terminalInfo{
		Stdin:  term.IsTerminal(int(os.Stdin.Fd())),
		Stdout: term.IsTerminal(int(os.Stdout.Fd())),
	}
	info.Interactive = info.Stdin && info.Stdout
	if info.Stdout {
		if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			info.Width = width
			info.Height = height
		}
	}
	return info
}
