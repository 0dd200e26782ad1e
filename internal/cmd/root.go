package cmd

import (
	"github.com/harrison/flatten/internal/display"
	"github.com/harrison/flatten/internal/filelock"
	"github.com/harrison/flatten/internal/flatten"
	"github.com/harrison/flatten/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for flatten
func NewRootCommand() *cobra.Command {
	return newRootCommandWithReader(newStdinReader())
}

// newRootCommandWithReader allows injecting the confirmation reader for tests
func newRootCommandWithReader(reader ConfirmReader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <directory>",
		Short: "Flatten subdirectories by moving all files to the root directory",
		Long: `Flatten relocates every file found below the given directory into the
directory itself, renaming on collision by appending a numeric suffix
(test.txt, test_1.txt, ...), then removes the emptied subdirectories.

The tree is scanned once up front so you see an accurate count and the
list of affected top-level directories before anything is moved.

Examples:
  flatten ~/Downloads                  # flatten everything
  flatten -n 2 ./archive               # only files at depth 1 and 2
  flatten -i photos,videos ./media     # only matching top-level dirs
  flatten -e .git ./project            # everything except matching dirs
  flatten -y -q ./inbox                # no prompt, no output`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd, args[0], reader)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().IntP("depth", "n", flatten.UnboundedDepth, "Maximum depth to traverse (default: unlimited)")
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output and the confirmation prompt")
	cmd.Flags().StringSliceP("include", "i", nil, "Only flatten top-level directories matching these prefixes (comma-separated)")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Skip top-level directories matching these prefixes (comma-separated)")

	return cmd
}

// runFlatten orchestrates a full run: summary pass, confirmation, flatten
// pass, then cleanup of the recorded top-level directories.
func runFlatten(cmd *cobra.Command, dir string, reader ConfirmReader) error {
	depth, _ := cmd.Flags().GetInt("depth")
	yes, _ := cmd.Flags().GetBool("yes")
	quiet, _ := cmd.Flags().GetBool("quiet")
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	opts := flatten.Options{
		MaxDepth:        depth,
		IncludePatterns: include,
		ExcludePatterns: exclude,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	root, err := flatten.CanonicalRoot(dir)
	if err != nil {
		return err
	}

	lock := filelock.NewRunLock(root)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(out, errOut, quiet)
	flattener := flatten.New(root, opts, log)

	summary, err := flattener.Summarize()
	if err != nil {
		return err
	}
	if summary.FileCount == 0 {
		log.Infof("No files found in subdirectories to flatten.")
		return nil
	}

	if !quiet {
		display.PreflightSummary(out, root, summary)
	}

	if !yes && !quiet {
		confirmed, err := confirmFlatten(reader, out)
		if err != nil {
			return err
		}
		if !confirmed {
			log.Infof("Flatten cancelled.")
			return nil
		}
	}

	moved, err := flattener.Flatten()
	if err != nil {
		return err
	}
	if !quiet {
		display.Completion(out, moved)
	}

	// The recorded directories are removed even if files remain inside
	// (skipped by the depth bound or by failed moves); surface those
	// before they are destroyed. Not suppressed by quiet mode.
	if residual := flattener.ResidualDirs(summary); len(residual) > 0 {
		display.WarnResidualDirs(residual).Display(errOut)
	}
	flattener.Cleanup(summary)

	return nil
}
