// Package main provides the roster CLI, an inspection tool that loads a
// YAML-described record set into an in-memory registry and runs
// lookups, projections, and deletions against it. Nothing is ever
// written back; every invocation rebuilds the registry from the input.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/roster/pkg/roster"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode classifies an error: registry lookup failures and malformed
// input are user errors, everything else is a system error.
func exitCode(err error) int {
	switch {
	case errors.Is(err, roster.ErrKeyNotFound),
		errors.Is(err, roster.ErrIndexOutOfRange),
		errors.Is(err, roster.ErrAmbiguousKey),
		errors.Is(err, roster.ErrDuplicateKey),
		errors.Is(err, roster.ErrUnknownProjection),
		errors.Is(err, errBadInput),
		errors.Is(err, errBadUsage):
		return exitUserError
	default:
		return exitSysError
	}
}
