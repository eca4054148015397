package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned for missing or malformed run inputs
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidVersion is returned when a tag cannot be parsed as a Version
	ErrInvalidVersion = errors.New("invalid version")

	// ErrManifestNotFound is returned when the manifest store has no such entry
	ErrManifestNotFound = errors.New("manifest not found")
)

// CommandError is returned when an external command exits with a non-zero status
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string // combined diagnostic output of the process
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}
