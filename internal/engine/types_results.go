package engine

// DiffEntry is the classification of one path appearing in either snapshot.
type DiffEntry struct {
	// Path is the forward-slash relative path.
	Path string

	// Status is the classification per hash comparison.
	Status DiffStatus

	// SourceHash and TargetHash are the content digests on each side;
	// empty when the path is absent from that side.
	SourceHash string
	TargetHash string

	// Binary is set on modified entries whose content failed text
	// detection; no line diff is available for them.
	Binary bool

	// UnifiedDiff contains the rendered unified patch (if line diffs
	// were requested and the entry is a modified text file).
	UnifiedDiff string

	// Additions and Deletions count changed lines in UnifiedDiff.
	Additions int
	Deletions int
}

// CompareResult represents the outcome of comparing two roots.
type CompareResult struct {
	// SourceDigest and TargetDigest are the aggregate tree digests.
	SourceDigest string
	TargetDigest string

	// Entries holds one DiffEntry per path in the union of both
	// snapshots, sorted by path.
	Entries []DiffEntry

	// SourceWarnings and TargetWarnings list per-entry read failures
	// from each walk. Affected paths are absent from Entries.
	SourceWarnings []Warning
	TargetWarnings []Warning
}

// Added, Removed, Modified, and Unchanged count entries by status.
func (r *CompareResult) Added() int     { return r.countStatus(StatusAdded) }
func (r *CompareResult) Removed() int   { return r.countStatus(StatusRemoved) }
func (r *CompareResult) Modified() int  { return r.countStatus(StatusModified) }
func (r *CompareResult) Unchanged() int { return r.countStatus(StatusUnchanged) }

// Drifted reports whether any path was added, removed, or modified.
func (r *CompareResult) Drifted() bool {
	for _, entry := range r.Entries {
		if entry.Status != StatusUnchanged {
			return true
		}
	}
	return false
}

// Changed returns only the entries that drifted, preserving order.
func (r *CompareResult) Changed() []DiffEntry {
	changed := make([]DiffEntry, 0, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.Status != StatusUnchanged {
			changed = append(changed, entry)
		}
	}
	return changed
}

func (r *CompareResult) countStatus(status DiffStatus) int {
	n := 0
	for _, entry := range r.Entries {
		if entry.Status == status {
			n++
		}
	}
	return n
}
