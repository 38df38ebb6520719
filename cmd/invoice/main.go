package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrisonrobin/hours/pkg/invoice"
	"github.com/harrisonrobin/hours/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usage = "usage: invoice <csv_file>"

var (
	verbose bool
	logger  *zap.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice <csv_file>",
		Short: "Format an hours CSV into invoice lines grouped by category",
		Long: `Reads a CSV with the header Week,Date,Hours,Task,Category and prints every
entry grouped by category, with per-category subtotals and the total hours.`,
		Args:          cobra.ArbitraryArgs, // counted in runInvoice so the banner prints first
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
		RunE: runInvoice,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	return cmd
}

func runInvoice(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "CSV converter to invoice-formatted fields")

	if len(args) != 1 {
		return &invoice.ArgumentError{Got: len(args)}
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open hours file: %w", err)
	}
	defer f.Close()

	sheet, err := invoice.NewReader(logger).ReadSheet(f)
	if err != nil {
		return err
	}
	if err := sheet.ValidateHeader(); err != nil {
		return err
	}
	fmt.Fprintln(out, "headers match")

	entries, err := sheet.Entries()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	group := invoice.GroupByCategory(entries)
	report := invoice.BuildReport(group)
	logger.Debug("built invoice report",
		zap.String("file", path),
		zap.Int("entries", len(entries)),
		zap.Int("categories", group.Len()),
		zap.String("total", report.Total.String()))

	_, err = report.WriteTo(out)
	return err
}

// explain prints a diagnostic for err, with the usage line for argument
// errors and both header rows for a header mismatch.
func explain(w io.Writer, err error) {
	var argErr *invoice.ArgumentError
	var headerErr *invoice.HeaderMismatchError

	switch {
	case errors.As(err, &argErr):
		fmt.Fprintln(w, "Not enough or too many arguments")
		fmt.Fprintln(w, usage)
	case errors.As(err, &headerErr):
		fmt.Fprintf(w, "actual header fields: %q\n", headerErr.Actual)
		fmt.Fprintf(w, "Error: header fields expected to be: %s\n", strings.Join(headerErr.Expected, ","))
		fmt.Fprintln(w, usage)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		explain(os.Stderr, err)
		os.Exit(1)
	}
}
