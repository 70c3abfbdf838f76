package table

import (
	"strings"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"firefox", "firefox %u", "12"},
		{"files", "nautilus --new-window %U", "3"},
	}
	lines := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "firefox  firefox %u                12" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "files    nautilus --new-window %U   3" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestFormatNoTrailingWhitespace(t *testing.T) {
	rows := [][]string{
		{"a", "short"},
		{"bb", "much longer cell"},
	}
	for _, line := range Format(rows, []Alignment{AlignLeft, AlignLeft}) {
		if strings.TrimRight(line, " ") != line {
			t.Fatalf("line %q has trailing whitespace", line)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if lines := Format(nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
