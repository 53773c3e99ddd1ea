package engine

import "errors"

var (
	// ErrNotFound indicates a root path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrNotReadable indicates a root path could not be read.
	ErrNotReadable = errors.New("path not readable")

	// ErrMixedRoots indicates one root is a file and the other a directory.
	ErrMixedRoots = errors.New("source and target must both be files or both be directories")

	// ErrDrift indicates the trees differ. It is not a failure; the CLI
	// uses it to map a drifted comparison to its own exit code.
	ErrDrift = errors.New("drift detected")
)
