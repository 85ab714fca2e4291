package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundview"
	"github.com/google/subcommands"
)

type normalizeCmd struct {
	pricesFile string
	group      int
	column     string
	base       float64
}

func (*normalizeCmd) Name() string     { return "normalize" }
func (*normalizeCmd) Synopsis() string { return "rebase the prices of funds to a common base" }
func (*normalizeCmd) Usage() string {
	return `ddf normalize -g <group> [-f <prices>] [-c <column>] [-base <price>]

Prints, as JSON, the prices of every fund of a group rebased so that all funds
are worth the base price on the first date where they all have a price.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "f", "", "Prices file (CSV or xlsx). Defaults to the configured one.")
	f.IntVar(&c.group, "g", 0, "Group of funds, e.g. the target year.")
	f.StringVar(&c.column, "c", "", "Price column. Defaults to the first one.")
	f.Float64Var(&c.base, "base", 0, "Base price. Defaults to the configured one.")
}

func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.base < 0 {
		fmt.Fprintf(os.Stderr, "Error: base price must be positive got %v\n", c.base)
		return subcommands.ExitUsageError
	}
	base := cfg.BasePrice
	if c.base > 0 {
		base = c.base
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

	out, err := json.Marshal(fundview.Normalize(prices.Collection(c.group, col), base))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding prices: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
