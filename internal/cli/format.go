package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/x0d167/hashdrift/internal/engine"
)

var (
	// Color functions - fatih/color disables itself when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// formatCompareOutput renders a compare result: tree digests and verdict,
// then per-file detail when verbose, unified diffs when requested.
func formatCompareOutput(result *engine.CompareResult, verbose, showDiffs bool) {
	_, _ = dimColor.Print("source: ")
	fmt.Println(result.SourceDigest)
	_, _ = dimColor.Print("target: ")
	fmt.Println(result.TargetDigest)

	printWarnings("source", result.SourceWarnings)
	printWarnings("target", result.TargetWarnings)

	if !result.Drifted() {
		_, _ = successColor.Println("Trees are identical")
		return
	}

	_, _ = warningColor.Println("Trees have drifted")

	if verbose || showDiffs {
		printChangedFiles(result, showDiffs)
	}

	printSummary(result)
}

// printChangedFiles lists every drifted path with a status badge, plus its
// unified diff when rendered.
func printChangedFiles(result *engine.CompareResult, showDiffs bool) {
	for _, entry := range result.Changed() {
		fmt.Println()
		printFileHeader(entry)
		if !showDiffs {
			continue
		}
		switch {
		case entry.UnifiedDiff != "":
			printUnifiedDiff(entry.UnifiedDiff)
		case entry.Status == engine.StatusModified && entry.Binary:
			_, _ = dimColor.Println("  (binary: no line diff)")
		}
	}
}

func printFileHeader(entry engine.DiffEntry) {
	statusChar := getStatusChar(entry.Status)
	statusClr := dimColor
	switch entry.Status {
	case engine.StatusAdded:
		statusClr = successColor
	case engine.StatusRemoved:
		statusClr = errorColor
	case engine.StatusModified:
		statusClr = warningColor
	}

	_, _ = statusClr.Printf("  %s ", statusChar)
	_, _ = headerColor.Printf("%s", entry.Path)

	if entry.Additions > 0 {
		_, _ = successColor.Printf("  +%d", entry.Additions)
	}
	if entry.Deletions > 0 {
		_, _ = errorColor.Printf("  -%d", entry.Deletions)
	}
	fmt.Println()
}

// getStatusChar returns the single-character status indicator.
func getStatusChar(status engine.DiffStatus) string {
	switch status {
	case engine.StatusModified:
		return "M"
	case engine.StatusAdded:
		return "A"
	case engine.StatusRemoved:
		return "D"
	default:
		return "?"
	}
}

func printUnifiedDiff(diffText string) {
	lines := strings.Split(diffText, "\n")
	for i, line := range lines {
		// Preserve trailing newline semantics from generated patches.
		if i == len(lines)-1 && line == "" {
			continue
		}

		switch {
		// Skip redundant header lines; the path is already shown in the
		// file header
		case strings.HasPrefix(line, "diff --git "),
			strings.HasPrefix(line, "+++ "),
			strings.HasPrefix(line, "--- "):
			continue
		case strings.HasPrefix(line, "@@"):
			_, _ = infoColor.Printf("  %s\n", line)
		case strings.HasPrefix(line, "+"):
			_, _ = successColor.Printf("  %s\n", line)
		case strings.HasPrefix(line, "-"):
			_, _ = errorColor.Printf("  %s\n", line)
		default:
			fmt.Printf("  %s\n", line)
		}
	}
}

// printWarnings lists paths that could not be read during a walk. They are
// excluded from classification, so the user must see them separately.
func printWarnings(side string, warnings []engine.Warning) {
	for _, w := range warnings {
		_, _ = warningColor.Fprintf(os.Stderr, "⚠ %s: unreadable: %s: %v\n", side, w.Path, w.Err)
	}
}

func printSummary(result *engine.CompareResult) {
	fmt.Println()
	fmt.Printf("%d file%s changed", len(result.Changed()), plural(len(result.Changed())))
	if n := result.Added(); n > 0 {
		_, _ = successColor.Printf(", %d added", n)
	}
	if n := result.Removed(); n > 0 {
		_, _ = errorColor.Printf(", %d removed", n)
	}
	if n := result.Modified(); n > 0 {
		_, _ = warningColor.Printf(", %d modified", n)
	}
	fmt.Println()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
