package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/robertmieta/cgt"
	"github.com/robertmieta/cgt/renderer"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	strategy string
}

func (*holdingsCmd) Name() string { return "holdings" }
func (*holdingsCmd) Synopsis() string {
	return "residual share counts after matching, for portfolio verification"
}
func (*holdingsCmd) Usage() string {
	return `ccgt holdings [-strategy <strategy>] <statement.csv> ...

  Runs the matching pass and prints only the residual holdings of the
  securities sold in the latest financial year, to compare against the actual
  brokerage portfolio.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "strategy", cgt.FIFO.String(), "Lot matching strategy (fifo, minimize)")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := runCalculation(c.strategy, false, f.Args())
	if report == nil {
		return status
	}
	printMarkdown(renderer.HoldingsMarkdown(report))
	return subcommands.ExitSuccess
}
