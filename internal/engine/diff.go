package engine

import "sort"

// Diff classifies every path in the union of both snapshots' key sets.
// It is a pure function: no I/O, no mutation of either snapshot. The
// result is sorted lexicographically by path, independent of traversal
// order, so repeated runs produce identical output.
func Diff(source, target *Snapshot) []DiffEntry {
	paths := make([]string, 0, len(source.Entries)+len(target.Entries))
	seen := make(map[string]struct{}, len(source.Entries)+len(target.Entries))
	for path := range source.Entries {
		paths = append(paths, path)
		seen[path] = struct{}{}
	}
	for path := range target.Entries {
		if _, ok := seen[path]; !ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	entries := make([]DiffEntry, 0, len(paths))
	for _, path := range paths {
		src, inSource := source.Entries[path]
		tgt, inTarget := target.Entries[path]

		entry := DiffEntry{Path: path}
		switch {
		case inSource && !inTarget:
			entry.Status = StatusRemoved
			entry.SourceHash = src.Hash
		case !inSource && inTarget:
			entry.Status = StatusAdded
			entry.TargetHash = tgt.Hash
		case src.Hash == tgt.Hash:
			entry.Status = StatusUnchanged
			entry.SourceHash = src.Hash
			entry.TargetHash = tgt.Hash
		default:
			entry.Status = StatusModified
			entry.SourceHash = src.Hash
			entry.TargetHash = tgt.Hash
			entry.Binary = !src.IsText || !tgt.IsText
		}
		entries = append(entries, entry)
	}

	return entries
}
