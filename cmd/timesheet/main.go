package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/harrisonrobin/hours/pkg/logging"
	"github.com/harrisonrobin/hours/pkg/timesheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var (
	verbose bool
	logger  *zap.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Total a day's task log and copy it to the clipboard",
		Long: `Reads "start-end task" lines from stdin until EOF, for example:

  9-10.30 Project A
  10.30-12 Review
  12-1 break
  1-5 Project A

Times are H or H.MM (minutes after the point). An end time earlier than the
start is read as PM. Lines that don't match, and breaks, are ignored.
Prints hours per task, the total and a list of tasks for a stand-up, then
copies the per-task lines to the clipboard.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runTimesheet,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped lines on stderr")
	return cmd
}

func runTimesheet(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Enter task log (Ctrl+D or Ctrl+Z to finish):")

	intervals, err := timesheet.NewParser(logger).Parse(cmd.InOrStdin())
	if err != nil {
		return err
	}

	tally, err := timesheet.Summarize(intervals)
	if err != nil {
		return err
	}
	logger.Debug("summarized task log",
		zap.Int("intervals", len(intervals)),
		zap.Int("tasks", tally.Len()),
		zap.Float64("total", tally.Total()))

	if _, err := tally.WriteTo(out); err != nil {
		return err
	}

	// Newlines keep the whole list in one spreadsheet cell when pasted.
	if err := clipboardWriteAll(tally.ClipboardText()); err != nil {
		logger.Error("clipboard write failed", zap.Error(err))
		return fmt.Errorf("could not copy to clipboard: %w", err)
	}
	fmt.Fprintln(out, "\n✅ Output copied to clipboard with line breaks!")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
