package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/x0d167/hashdrift/internal/linediff"
)

// textSniffLen is how many leading bytes are sampled per file to decide
// whether it is text.
const textSniffLen = 8000

// fileJob is one file scheduled for hashing during a walk.
type fileJob struct {
	absPath string
	relPath string
}

// fileResult is the outcome of hashing one file.
type fileResult struct {
	relPath string
	entry   FileEntry
	err     error
}

// Snapshot walks root and returns its directory snapshot plus any
// non-fatal per-entry warnings.
//
// A missing root fails with ErrNotFound and an unreadable root with
// ErrNotReadable; both abort the walk. Failures on individual descendants
// are soft: the path is recorded as a Warning, excluded from the snapshot,
// and the walk continues. Symlinks are never followed, whether they point
// at files or directories, so cyclic links cannot recurse.
//
// A root that is a regular file produces a snapshot with a single entry
// keyed by the file's own name.
func (e *Engine) Snapshot(ctx context.Context, root string) (*Snapshot, []Warning, error) {
	info, err := e.fs.Stat(root)
	if err != nil {
		return nil, nil, classifyRootErr(root, err)
	}

	snap := &Snapshot{
		Root:    root,
		Entries: make(map[string]FileEntry),
	}

	if !info.IsDir() {
		entry, err := e.hashOne(root, filepath.Base(root))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrNotReadable, root, err)
		}
		snap.Entries[entry.RelPath] = entry
		// A single file's tree digest is its content hash: the file's
		// name is an argument, not content.
		snap.Digest = entry.Hash
		return snap, nil, nil
	}

	var warnings []Warning
	var jobs []fileJob
	if err := e.collect(ctx, root, root, &jobs, &warnings); err != nil {
		return nil, nil, err
	}

	results, err := e.hashAll(ctx, jobs)
	if err != nil {
		return nil, nil, err
	}
	for _, res := range results {
		if res.err != nil {
			warnings = append(warnings, Warning{Path: res.relPath, Err: res.err})
			continue
		}
		snap.Entries[res.relPath] = res.entry
	}

	snap.Digest = treeDigest(snap.Entries)
	return snap, warnings, nil
}

// collect recursively lists dir, pruning ignored names before descent and
// appending hashable files to jobs. Listing failures below the root are
// soft warnings; only the root itself is fatal.
func (e *Engine) collect(ctx context.Context, root, dir string, jobs *[]fileJob, warnings *[]Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		if dir == root {
			return classifyRootErr(root, err)
		}
		rel := relSlash(root, dir)
		*warnings = append(*warnings, Warning{Path: rel, Err: err})
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if e.matcher.Match(name) {
			// Pruned here so ignored trees are never descended into.
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}

		path := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			if err := e.collect(ctx, root, path, jobs, warnings); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			*jobs = append(*jobs, fileJob{absPath: path, relPath: relSlash(root, path)})
		}
	}
	return nil
}

// hashAll runs the collected jobs on a bounded worker pool. Completion
// order is irrelevant: the diff stage sorts by path.
func (e *Engine) hashAll(ctx context.Context, jobs []fileJob) ([]fileResult, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	jobCh := make(chan fileJob)
	resultCh := make(chan fileResult, len(jobs))

	var wg sync.WaitGroup
	workers := hashWorkers
	if len(jobs) < workers {
		workers = len(jobs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				entry, err := e.hashOne(job.absPath, job.relPath)
				resultCh <- fileResult{relPath: job.relPath, entry: entry, err: err}
			}
		}()
	}

	scheduled := 0
schedule:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			// Stop scheduling; in-flight hashes drain below.
			break schedule
		case jobCh <- job:
			scheduled++
		}
	}
	close(jobCh)
	wg.Wait()
	close(resultCh)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]fileResult, 0, scheduled)
	for res := range resultCh {
		results = append(results, res)
	}
	return results, nil
}

// hashOne hashes a single file and samples its leading bytes for text
// detection.
func (e *Engine) hashOne(absPath, relPath string) (FileEntry, error) {
	digest, err := e.hasher.HashFile(absPath)
	if err != nil {
		return FileEntry{}, err
	}
	prefix, err := e.fs.ReadPrefix(absPath, textSniffLen)
	if err != nil {
		return FileEntry{}, err
	}
	return FileEntry{
		RelPath: relPath,
		Hash:    digest,
		IsText:  !linediff.IsBinary(prefix),
	}, nil
}

// treeDigest computes the aggregate digest over the sorted (path, hash)
// pairs, so two trees with identical content produce identical digests
// regardless of listing order.
func treeDigest(entries map[string]FileEntry) string {
	paths := make([]string, 0, len(entries))
	for path := range entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	hasher := sha256.New()
	for _, path := range paths {
		hasher.Write([]byte(path))
		hasher.Write([]byte{0})
		hasher.Write([]byte(entries[path].Hash))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// relSlash returns path relative to root with forward-slash separators,
// so snapshot keys compare identically across platforms.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// classifyRootErr maps a root-level stat/list failure onto the error
// taxonomy.
func classifyRootErr(root string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	if os.IsPermission(err) {
		return fmt.Errorf("%w: %s", ErrNotReadable, root)
	}
	return fmt.Errorf("%w: %s: %v", ErrNotReadable, root, err)
}
