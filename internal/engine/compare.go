package engine

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/x0d167/hashdrift/internal/linediff"
)

// Compare walks both roots, classifies every path, and optionally attaches
// unified line diffs to modified text files.
//
// Both roots must exist and be the same kind (two files or two
// directories); anything else is a fatal error. The two walks run
// concurrently; they share only the read-only ignore matcher.
func (e *Engine) Compare(ctx context.Context, req *CompareRequest) (*CompareResult, error) {
	srcInfo, err := e.fs.Stat(req.SourcePath)
	if err != nil {
		return nil, classifyRootErr(req.SourcePath, err)
	}
	tgtInfo, err := e.fs.Stat(req.TargetPath)
	if err != nil {
		return nil, classifyRootErr(req.TargetPath, err)
	}
	if srcInfo.IsDir() != tgtInfo.IsDir() {
		return nil, ErrMixedRoots
	}

	var (
		wg                 sync.WaitGroup
		srcSnap, tgtSnap   *Snapshot
		srcWarns, tgtWarns []Warning
		srcErr, tgtErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		srcSnap, srcWarns, srcErr = e.Snapshot(ctx, req.SourcePath)
	}()
	go func() {
		defer wg.Done()
		tgtSnap, tgtWarns, tgtErr = e.Snapshot(ctx, req.TargetPath)
	}()
	wg.Wait()

	if srcErr != nil {
		return nil, srcErr
	}
	if tgtErr != nil {
		return nil, tgtErr
	}

	// Two single-file roots compare content to content even when their
	// names differ: re-key the target entry under the source's name so
	// the pair lands on one logical path.
	if !srcInfo.IsDir() {
		alignFilePair(srcSnap, tgtSnap)
	}

	result := &CompareResult{
		SourceDigest:   srcSnap.Digest,
		TargetDigest:   tgtSnap.Digest,
		Entries:        Diff(srcSnap, tgtSnap),
		SourceWarnings: srcWarns,
		TargetWarnings: tgtWarns,
	}

	if req.IncludeLineDiffs {
		if err := e.attachLineDiffs(ctx, req, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// attachLineDiffs reads both sides of every modified text entry and fills
// in its unified patch and line counts. Binary entries keep their hash
// classification and never get line content. A file that became unreadable
// since the walk keeps its modified status and is recorded as a warning,
// like any other per-entry failure.
func (e *Engine) attachLineDiffs(ctx context.Context, req *CompareRequest, result *CompareResult) error {
	for i := range result.Entries {
		entry := &result.Entries[i]
		if entry.Status != StatusModified || entry.Binary {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		srcContent, err := e.readSide(req.SourcePath, entry.Path)
		if err != nil {
			result.SourceWarnings = append(result.SourceWarnings, Warning{Path: entry.Path, Err: err})
			continue
		}
		tgtContent, err := e.readSide(req.TargetPath, entry.Path)
		if err != nil {
			result.TargetWarnings = append(result.TargetWarnings, Warning{Path: entry.Path, Err: err})
			continue
		}

		diff := linediff.Diff(srcContent, tgtContent)
		if diff.Binary {
			// The walk sniffs only a prefix; a NUL deeper in the file
			// surfaces here and downgrades the entry the same way.
			entry.Binary = true
			continue
		}
		entry.UnifiedDiff = diff.Unified(entry.Path)
		entry.Additions = diff.Additions
		entry.Deletions = diff.Deletions
	}
	return nil
}

// readSide resolves a snapshot-relative path against a root that may be a
// directory or a single file.
func (e *Engine) readSide(root, relPath string) ([]byte, error) {
	info, err := e.fs.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return e.fs.ReadFile(root)
	}
	return e.fs.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
}

// alignFilePair re-keys a single-entry target snapshot to the source
// snapshot's key. Digests are unaffected: a single-file digest is the
// content hash, which carries no name.
func alignFilePair(source, target *Snapshot) {
	if len(source.Entries) != 1 || len(target.Entries) != 1 {
		return
	}
	var srcKey, tgtKey string
	for k := range source.Entries {
		srcKey = k
	}
	for k := range target.Entries {
		tgtKey = k
	}
	if srcKey == tgtKey {
		return
	}
	entry := target.Entries[tgtKey]
	entry.RelPath = srcKey
	delete(target.Entries, tgtKey)
	target.Entries[srcKey] = entry
}
