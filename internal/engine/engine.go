// Package engine provides the core drift-detection logic.
//
// The engine package acts as the orchestration layer between the CLI and
// lower-level operations. It coordinates tree walking, content hashing,
// set-based diff classification, and line-level diffing of modified text
// files.
//
// Key components:
//   - Engine: main orchestrator, called by the CLI
//   - Snapshot: recursive tree hashing with ignore-rule pruning
//   - Diff: pure classification of two snapshots
//   - Compare: full source-vs-target comparison
package engine

import (
	"github.com/x0d167/hashdrift/internal/fsops"
	"github.com/x0d167/hashdrift/internal/hash"
	"github.com/x0d167/hashdrift/internal/ignore"
)

// hashWorkers is the size of the bounded pool hashing files within a walk.
// Hashing is I/O bound; a small fixed pool keeps disks busy without a flag.
const hashWorkers = 8

// Engine orchestrates drift detection between two roots.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	hasher  hash.Hasher
	matcher *ignore.Matcher
}

// New creates a new Engine with the given dependencies. The matcher is
// shared read-only by every walk the engine performs.
func New(fs fsops.FS, hasher hash.Hasher, matcher *ignore.Matcher) *Engine {
	return &Engine{
		fs:      fs,
		hasher:  hasher,
		matcher: matcher,
	}
}
