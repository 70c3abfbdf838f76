// Package launcher turns descriptor exec templates into argument vectors and
// spawns them as detached child processes.
package launcher

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"
)

// StripFieldCodes removes every two-character %x placeholder from template,
// including the trailing case where % is the final character.
func StripFieldCodes(template string) string {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		if template[i] == '%' {
			i++
			continue
		}
		b.WriteByte(template[i])
	}
	return b.String()
}

// SplitArgs tokenizes a command on single spaces, dropping empty tokens.
func SplitArgs(command string) []string {
	fields := strings.Split(command, " ")
	args := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			args = append(args, field)
		}
	}
	return args
}

// Command builds the argument vector for a raw exec template: field codes
// stripped, then tokenized. An empty result is an error.
func Command(template string) ([]string, error) {
	args := SplitArgs(StripFieldCodes(template))
	if len(args) == 0 {
		return nil, fmt.Errorf("exec template %q left no command after stripping", template)
	}
	return args, nil
}

// Spawn starts the template's command as a detached child: its own session,
// standard streams on the null device (the zero-value cmd streams), and no
// wait from the parent. The child's eventual exit is invisible to us.
func Spawn(template string) error {
	args, err := Command(template)
	if err != nil {
		return err
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", args[0], err)
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}
