package main

import (
	"errors"

	"github.com/yacobolo/statecss"
)

// Process exit codes
const (
	exitOK         = 0
	exitFailure    = 1 // anything else, including stale output and strict violations
	exitStatesRoot = 2 // states root missing or unreadable
	exitOutput     = 3 // output directory missing or output not writable
	exitRead       = 4 // a style file could not be read
)

// errStale is returned by check when the output differs from a fresh compilation.
var errStale = errors.New("stylesheet is out of date")

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, statecss.ErrStatesRoot):
		return exitStatesRoot
	case errors.Is(err, statecss.ErrOutput):
		return exitOutput
	case errors.Is(err, statecss.ErrFileRead):
		return exitRead
	default:
		return exitFailure
	}
}
