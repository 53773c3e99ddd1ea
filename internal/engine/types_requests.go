package engine

// CompareRequest represents a request to compare two roots for drift.
type CompareRequest struct {
	// SourcePath is the file or directory treated as the baseline.
	SourcePath string

	// TargetPath is the file or directory compared against the baseline.
	TargetPath string

	// IncludeLineDiffs attaches unified line diffs to modified text files.
	IncludeLineDiffs bool
}
