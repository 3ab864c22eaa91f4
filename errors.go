package statecss

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every returned error names the failing path and can be
// matched with errors.Is against one of these.
var (
	// ErrFileSystem covers missing, unreadable or unwritable directories.
	ErrFileSystem = errors.New("file system error")
	// ErrStatesRoot: the states root (or a state directory) cannot be listed.
	ErrStatesRoot = fmt.Errorf("%w: states root", ErrFileSystem)
	// ErrOutput: the output directory is missing or the output cannot be written.
	ErrOutput = fmt.Errorf("%w: output", ErrFileSystem)
	// ErrFileRead: a discovered style file cannot be opened or read.
	ErrFileRead = errors.New("style file read error")
	// ErrUnterminatedRule: strict mode found a rule still open at end of file.
	ErrUnterminatedRule = errors.New("unterminated rule")
	// ErrInvalidConfig: a configuration value cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var errNotDir = errors.New("not a directory")

func pathError(kind error, path string, err error) error {
	return fmt.Errorf("%w: %s: %w", kind, path, err)
}

func isReadError(err error) bool {
	return errors.Is(err, ErrFileRead)
}
