package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/fundview"
	"github.com/google/subcommands"
)

type cagrCmd struct {
	pricesFile string
	group      int
	column     string
}

func (*cagrCmd) Name() string     { return "cagr" }
func (*cagrCmd) Synopsis() string { return "compute the compound annual growth rate of funds" }
func (*cagrCmd) Usage() string {
	return `ddf cagr -g <group> [-f <prices>] [-c <column>]

Prints the compound annual growth rate of every fund of a group, from its
first to its last known price. Missing prices are ignored.

Funds whose rate cannot be computed are printed with "-".
`
}

func (c *cagrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "f", "", "Prices file (CSV or xlsx). Defaults to the configured one.")
	f.IntVar(&c.group, "g", 0, "Group of funds, e.g. the target year.")
	f.StringVar(&c.column, "c", "", "Price column. Defaults to the first one.")
}

func (c *cagrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := fundview.LoadPrices(or(c.pricesFile, cfg.Data.PricesFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	col, err := column(prices.Columns(), c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	collection := prices.Collection(c.group, col)
	if len(collection) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no prices for group %d, want one of %v\n", c.group, prices.Groups())
		return subcommands.ExitUsageError
	}

	for _, ticker := range collection.Tickers() {
		cagr, err := fundview.CAGR(fundview.Valid(collection[ticker]))
		if err != nil {
			log.Printf("warning: no CAGR for %q: %v", ticker, err)
			fmt.Fprintf(stdout, "%s: -\n", ticker)
			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", ticker, cagr)
	}
	return subcommands.ExitSuccess
}
