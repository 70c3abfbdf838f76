// Package history persists launch counts as an append-only log, one entry
// name per line, and loads them back as a rank table.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "launchpad"

// Ranks maps entry names to the number of recorded launches.
type Ranks map[string]int

// Count returns the launch count for name, zero when absent.
func (r Ranks) Count(name string) int { return r[name] }

// Empty reports whether no launches have been recorded.
func (r Ranks) Empty() bool { return len(r) == 0 }

// DefaultPath resolves the per-user history file location, honouring
// XDG_DATA_HOME before falling back to ~/.local/share.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDir, "history"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDir, "history"), nil
}

// Load reads the history log and counts launches per distinct line. A missing
// file yields empty ranks and no error.
func Load(path string) (Ranks, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Ranks{}, nil
		}
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	defer file.Close()

	ranks := Ranks{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		ranks[line]++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	return ranks, nil
}

// Append records one launched entry name, creating the log and its parent
// directories on first use.
func Append(path, name string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history %s: %w", path, err)
	}
	if _, err := fmt.Fprintln(file, name); err != nil {
		file.Close()
		return fmt.Errorf("append history: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}
	return nil
}
