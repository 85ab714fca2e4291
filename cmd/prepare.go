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

type prepareCmd struct {
	pricesFile string
	namesFile  string
	output     string
}

func (*prepareCmd) Name() string     { return "prepare" }
func (*prepareCmd) Synopsis() string { return "build the dashboard datasets of all groups" }
func (*prepareCmd) Usage() string {
	return `ddf prepare [-f <prices>] [-names <names>] [-o <output>]

Builds, for every group and price column, the price history and annualized
returns of the funds, both raw and rebased to the base price, and writes them
as JSON keyed by group.
`
}

func (c *prepareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "f", "", "Prices file (CSV or xlsx). Defaults to the configured one.")
	f.StringVar(&c.namesFile, "names", "", "Fund names file (CSV or xlsx). Defaults to the configured one.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *prepareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	names, err := loadNames(or(c.namesFile, cfg.Data.NamesFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading names: %v\n", err)
		return subcommands.ExitFailure
	}
	groups, err := fundview.Prepare(prices, names, cfg.BasePrice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing datasets: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.Marshal(groups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding datasets: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		fmt.Fprintln(stdout, string(out))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully wrote %d groups to %s\n", len(groups), c.output)
	return subcommands.ExitSuccess
}
