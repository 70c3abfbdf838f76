package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension identifies descriptor files under the search directories.
const Extension = ".desktop"

// Entry is one launchable application: the lowercased name used for display
// and matching, and the raw exec template from its descriptor.
type Entry struct {
	Name string
	Exec string
}

// Store holds deduplicated entries in discovery order. It is built once at
// startup and read-only afterwards.
type Store struct {
	entries []Entry
}

// New builds a store from raw entries, dropping records with an empty name or
// exec and later duplicates of an already-seen name.
func New(entries []Entry) *Store {
	seen := make(map[string]struct{}, len(entries))
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" || entry.Exec == "" {
			continue
		}
		if _, dup := seen[entry.Name]; dup {
			continue
		}
		seen[entry.Name] = struct{}{}
		kept = append(kept, entry)
	}
	return &Store{entries: kept}
}

// Len reports the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// At returns the entry at index i.
func (s *Store) At(i int) Entry { return s.entries[i] }

// Names returns the stored names in discovery order.
func (s *Store) Names() []string {
	names := make([]string, len(s.entries))
	for i, entry := range s.entries {
		names[i] = entry.Name
	}
	return names
}

// Load scans the search directories for descriptor files and builds the
// store. A missing directory is skipped silently; unreadable directories and
// files are skipped and reported through the joined error alongside the
// (still usable) store.
func Load(dirs []string) (*Store, error) {
	raw := make([]Entry, 0, 128)
	var errs []error
	for _, dir := range dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			errs = append(errs, fmt.Errorf("read dir %s: %w", dir, err))
			continue
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), Extension) {
				continue
			}
			path := filepath.Join(dir, file.Name())
			entry, err := parseDescriptor(path)
			if err != nil {
				if errors.Is(err, errSkipEntry) {
					continue
				}
				errs = append(errs, fmt.Errorf("parse %s: %w", path, err))
				continue
			}
			raw = append(raw, entry)
		}
	}
	return New(raw), errors.Join(errs...)
}

var errSkipEntry = errors.New("skip entry")

// parseDescriptor extracts the first Name= and first Exec= values from a
// descriptor file, stopping as soon as both are present. Entries missing
// either field are skipped.
func parseDescriptor(path string) (Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer file.Close()

	var (
		name, exec         string
		nameSeen, execSeen bool
	)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !nameSeen {
			if value, ok := strings.CutPrefix(line, "Name="); ok {
				name = strings.ToLower(strings.TrimSpace(value))
				nameSeen = true
			}
		}
		if !execSeen {
			if value, ok := strings.CutPrefix(line, "Exec="); ok {
				exec = strings.TrimSpace(value)
				execSeen = true
			}
		}
		if nameSeen && execSeen {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, err
	}
	if name == "" || exec == "" {
		return Entry{}, errSkipEntry
	}
	return Entry{Name: name, Exec: exec}, nil
}
