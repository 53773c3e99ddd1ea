// Package linediff produces line-level unified diffs for modified text files.
//
// It uses github.com/pmezard/go-difflib/difflib to compute an LCS-based edit
// script, grouped into hunks with surrounding context lines. Files are first
// classified text or binary; binary content on either side short-circuits to
// a sentinel result and no line content is ever emitted for it.
package linediff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of unchanged lines kept around each changed
// region in a hunk.
const DefaultContext = 3

// sniffLen is how many leading bytes are sampled for binary detection.
// A NUL byte within the sample classifies the content as binary, the same
// heuristic git uses.
const sniffLen = 8000

// Marker tags a single diff line.
type Marker byte

const (
	// ContextLine is an unchanged line present on both sides.
	ContextLine Marker = ' '
	// AddedLine exists only on the target side.
	AddedLine Marker = '+'
	// RemovedLine exists only on the source side.
	RemovedLine Marker = '-'
)

// Line is one line of a hunk, with its newline preserved in Text when the
// underlying file has one.
type Line struct {
	Marker Marker
	Text   string
}

// Hunk is a contiguous group of changes plus context, with 1-based,
// unified-diff-style line ranges into each side.
type Hunk struct {
	SourceStart int
	SourceLines int
	TargetStart int
	TargetLines int
	Lines       []Line
}

// Result is the outcome of diffing one modified file.
type Result struct {
	// Binary is set when either side failed text detection; Hunks is empty
	// and the caller must not render line content.
	Binary bool

	Hunks []Hunk

	// Additions and Deletions count changed lines across all hunks.
	Additions int
	Deletions int
}

// IsBinary reports whether data looks like binary content: a NUL byte in
// the first sniffLen bytes.
func IsBinary(data []byte) bool {
	sample := data
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}
	for _, b := range sample {
		if b == 0 {
			return true
		}
	}
	return false
}

// Diff computes the line-level diff between source and target content.
// Callers invoke it only for files already known to differ by hash;
// equal content never reaches this function.
func Diff(source, target []byte) Result {
	// Full content is in hand here, so scan all of it: a NUL beyond the
	// sniff window still disqualifies the file from line diffing.
	if bytes.IndexByte(source, 0) >= 0 || bytes.IndexByte(target, 0) >= 0 {
		return Result{Binary: true}
	}

	a := splitLinesKeepNL(string(source))
	b := splitLinesKeepNL(string(target))

	matcher := difflib.NewMatcher(a, b)

	var res Result
	for _, group := range matcher.GetGroupedOpCodes(DefaultContext) {
		first, last := group[0], group[len(group)-1]
		hunk := Hunk{
			SourceStart: hunkStart(first.I1, last.I2),
			SourceLines: last.I2 - first.I1,
			TargetStart: hunkStart(first.J1, last.J2),
			TargetLines: last.J2 - first.J1,
		}
		for _, op := range group {
			switch op.Tag {
			case 'e':
				for _, text := range a[op.I1:op.I2] {
					hunk.Lines = append(hunk.Lines, Line{Marker: ContextLine, Text: text})
				}
			default:
				// 'r', 'd', 'i': removed lines first, then added, the
				// order unified diffs render replacements in.
				if op.Tag == 'r' || op.Tag == 'd' {
					for _, text := range a[op.I1:op.I2] {
						hunk.Lines = append(hunk.Lines, Line{Marker: RemovedLine, Text: text})
						res.Deletions++
					}
				}
				if op.Tag == 'r' || op.Tag == 'i' {
					for _, text := range b[op.J1:op.J2] {
						hunk.Lines = append(hunk.Lines, Line{Marker: AddedLine, Text: text})
						res.Additions++
					}
				}
			}
		}
		res.Hunks = append(res.Hunks, hunk)
	}

	return res
}

// Unified renders the result as a classic unified patch for the given
// relative path, with git-style a/ and b/ labels. Binary results render a
// one-line note instead of hunks.
func (r Result) Unified(relPath string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "diff --git a/%s b/%s\n", relPath, relPath)
	if r.Binary {
		fmt.Fprintf(&sb, "Binary files a/%s and b/%s differ\n", relPath, relPath)
		return sb.String()
	}
	fmt.Fprintf(&sb, "--- a/%s\n", relPath)
	fmt.Fprintf(&sb, "+++ b/%s\n", relPath)
	for _, hunk := range r.Hunks {
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			formatRange(hunk.SourceStart, hunk.SourceLines),
			formatRange(hunk.TargetStart, hunk.TargetLines))
		for _, line := range hunk.Lines {
			sb.WriteByte(byte(line.Marker))
			sb.WriteString(line.Text)
			if !strings.HasSuffix(line.Text, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}

// hunkStart converts a 0-based opcode offset into the 1-based start line
// unified diffs use; empty ranges keep the 0-based position.
func hunkStart(first, last int) int {
	if last-first == 0 {
		return first
	}
	return first + 1
}

// formatRange renders one side of a @@ header, omitting the length when
// it is exactly one line.
func formatRange(start, lines int) string {
	if lines == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, lines)
}

// splitLinesKeepNL splits into lines keeping the trailing "\n" on each
// element, which produces correct unified hunks for files without a final
// newline.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
