package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/robertmieta/cgt"
	"github.com/robertmieta/cgt/commsec"
	"github.com/robertmieta/cgt/renderer"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	strategy string
	discount bool
	outDir   string
	noExport bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "realized capital gains for the latest financial year" }
func (*calcCmd) Usage() string {
	return `ccgt calc [-strategy <strategy>] [-discount] [-o <dir>] [-no-export] <statement.csv> ...

  Calculates realized capital gains for the most recent financial year found
  in the given CommSec CSV exports, and writes the summary text and tabular
  CSV next to them.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "strategy", cgt.FIFO.String(), "Lot matching strategy (fifo, minimize)")
	f.BoolVar(&c.discount, "discount", false, "Apply the 12 month 50% CGT discount to long-term gains")
	f.StringVar(&c.outDir, "o", ".", "Directory the summary files are written to")
	f.BoolVar(&c.noExport, "no-export", false, "Only print the report, do not write summary files")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := runCalculation(c.strategy, c.discount, f.Args())
	if report == nil {
		return status
	}

	printMarkdown(renderer.GainsMarkdown(report))

	if c.noExport {
		return subcommands.ExitSuccess
	}

	base := filepath.Join(c.outDir, renderer.ExportBasename(report.Window))
	txtFile, csvFile := base+".txt", base+".csv"
	if err := os.WriteFile(txtFile, []byte(renderer.SummaryText(report)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(csvFile, []byte(renderer.SummaryCSV(report)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tabular summary: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Calculation transaction summary exported to: %s\n", txtFile)
	fmt.Fprintf(os.Stderr, "Capital gains tabular summary exported to: %s\n", csvFile)
	return subcommands.ExitSuccess
}

// runCalculation imports the statements and runs the engine, translating the
// distinct outcomes into user messages. A nil report means the caller should
// return the accompanying status immediately.
func runCalculation(strategy string, discount bool, files []string) (*cgt.Report, subcommands.ExitStatus) {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No CSV files given")
		return nil, subcommands.ExitUsageError
	}

	s, err := cgt.ParseMatchingStrategy(strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing strategy: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	ledger, err := commsec.ImportFiles(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing statements: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	report, err := cgt.Calculate(ledger, cgt.Options{Strategy: s, ApplyDiscount: discount})
	switch {
	case errors.Is(err, cgt.ErrNoSales), errors.Is(err, cgt.ErrNoRelevantActivity):
		// Valid empty outcomes, not failures.
		fmt.Fprintln(os.Stderr, err)
		return nil, subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error calculating gains: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return report, subcommands.ExitSuccess
}
