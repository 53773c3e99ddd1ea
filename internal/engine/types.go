package engine

// FileEntry is one file's identity within a snapshot. Immutable once
// computed.
type FileEntry struct {
	// RelPath is the forward-slash relative path from the snapshot root.
	RelPath string

	// Hash is the lowercase hex content digest.
	Hash string

	// IsText records whether the file's leading bytes look like text,
	// sampled once during the walk so the line differ can skip binaries.
	IsText bool
}

// Snapshot maps relative paths to file entries for one root at one point
// in time. Built once per root per run and never mutated afterwards.
type Snapshot struct {
	// Root is the path the snapshot was taken from.
	Root string

	// Entries maps RelPath to its FileEntry.
	Entries map[string]FileEntry

	// Digest is an aggregate hash over the sorted (path, hash) pairs,
	// identifying the whole tree's content in one value.
	Digest string
}

// Warning records a non-fatal per-entry failure encountered during a walk.
// The affected path is excluded from the snapshot but must still be shown
// to the user so it is not mistaken for an unchanged file.
type Warning struct {
	Path string
	Err  error
}

// DiffStatus classifies one path in a comparison.
type DiffStatus string

const (
	StatusAdded     DiffStatus = "added"
	StatusRemoved   DiffStatus = "removed"
	StatusModified  DiffStatus = "modified"
	StatusUnchanged DiffStatus = "unchanged"
)
