// Package tui decides whether a human is at the terminal and, when one
// is, handles the single interactive surface popestat has: the
// non-echoing password prompt.
package tui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether popestat may prompt the user.
//
// Returns false if:
//   - stdin or stdout is not a terminal (piped input, CI/CD)
//   - POPESTAT_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
func IsInteractive() bool {
	if os.Getenv("POPESTAT_NON_INTERACTIVE") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
