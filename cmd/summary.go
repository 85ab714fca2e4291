package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundview/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	pricesFile string
	namesFile  string
	group      int
	column     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of a group of funds" }
func (*summaryCmd) Usage() string {
	return `ddf summary -g <group> [-f <prices>] [-names <names>] [-c <column>]

  Displays the latest price, the CAGR and the annualized return of every fund
  of a group, best annualized return first.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "f", "", "Prices file (CSV or xlsx). Defaults to the configured one.")
	f.StringVar(&c.namesFile, "names", "", "Fund names file (CSV or xlsx). Defaults to the configured one.")
	f.IntVar(&c.group, "g", 0, "Group of funds, e.g. the target year.")
	f.StringVar(&c.column, "c", "", "Price column. Defaults to the first one.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	g, err := loadGroup(cfg, c.pricesFile, c.namesFile, c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	col, err := column(g.Columns, c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := renderer.NewSummary(c.group, g, col, cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSummary(s))

	return subcommands.ExitSuccess
}
