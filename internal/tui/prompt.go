package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassword prompts on stderr and reads a password from the terminal
// without echoing it. The trailing newline the user types is not part of
// the result.
func ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}
