// Package cli implements the hashdrift command surface. It parses flags,
// drives the engine, and renders results; all drift logic lives in
// internal/engine.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/x0d167/hashdrift/internal/engine"
	"github.com/x0d167/hashdrift/internal/fsops"
	"github.com/x0d167/hashdrift/internal/hash"
	"github.com/x0d167/hashdrift/internal/ignore"
)

var (
	verboseFlag bool
	diffFlag    bool
	ignoreFlags []string
)

// rootCmd is the root command for hashdrift.
var rootCmd = &cobra.Command{
	Use:     "hashdrift <source> <target>",
	Version: "dev",
	Short:   "Detect content drift between two directories or files",
	Long: `hashdrift compares two directories (or two files) by content hash and
reports which files were added, removed, or modified. Timestamps and sizes
are never consulted; two trees are identical exactly when their hashes are.

Exit status:
  0  trees identical under the ignore rules
  1  drift detected
  2  operational failure (path missing or unreadable, mixed file/directory arguments)`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := engine.New(
			fsops.NewRealFS(),
			hash.NewSHA256Hasher(),
			ignore.NewMatcher(ignoreFlags),
		)

		req := &engine.CompareRequest{
			SourcePath:       args[0],
			TargetPath:       args[1],
			IncludeLineDiffs: diffFlag,
		}

		result, err := eng.Compare(context.Background(), req)
		if err != nil {
			return err
		}

		formatCompareOutput(result, verboseFlag, diffFlag)

		if result.Drifted() {
			// Signals the drift exit code; main maps it to 1, not 2.
			return engine.ErrDrift
		}
		return nil
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print every added/removed/modified path")
	rootCmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "Show unified line diffs for modified text files (implies --verbose)")
	rootCmd.Flags().StringArrayVarP(&ignoreFlags, "ignore", "i", nil, "Extra name to ignore; matches any path segment exactly (repeatable)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
