// Package ui formats viewer status for the window caption and draws the
// in-window overlay.
package ui

import (
	"fmt"
	"strings"
)

// Status describes what the viewer shows about the running simulation.
type Status struct {
	// Pattern names the last seed: a library id, "Rand", "Noise", or
	// "None" for an empty board.
	Pattern    string
	Paused     bool
	Generation uint64
	Population int
	TPS        int
}

// State returns the run-state word used in captions.
func (s Status) State() string {
	if s.Paused {
		return "paused"
	}
	return "running"
}

// Caption expands the {pat} and {paused} markers in template.
func Caption(template string, s Status) string {
	out := strings.ReplaceAll(template, "{pat}", s.Pattern)
	return strings.ReplaceAll(out, "{paused}", s.State())
}

// Lines returns the status block shown by the overlay.
func (s Status) Lines() []string {
	return []string{
		fmt.Sprintf("pattern: %s (%s)", s.Pattern, s.State()),
		fmt.Sprintf("generation: %d", s.Generation),
		fmt.Sprintf("population: %d", s.Population),
		fmt.Sprintf("rate: %d gen/s", s.TPS),
	}
}

// HelpLines lists the key bindings shown under the status block.
func HelpLines() []string {
	return []string{
		"space   pause / resume",
		"right   step once while paused",
		"c       clear the board",
		"g       random fill",
		"n       noise fill",
		"1-9     seed a library pattern",
		"click   toggle a cell",
		"h       toggle this overlay",
		"q, esc  quit",
	}
}
