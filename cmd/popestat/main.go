package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/censustat/popestat/internal/cli"
	"github.com/censustat/popestat/pkg/popestat"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(popestat.ExitGeneralErr)
		}
	}()

	// With SIGPIPE ignored, a closed downstream pipe surfaces as an
	// EPIPE write error instead of killing the process, which lets us
	// exit with the broken-pipe code.
	signal.Ignore(syscall.SIGPIPE)

	if err := cli.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(popestat.ExitCodeForError(err))
	}
}
