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

type figureCmd struct {
	pricesFile string
	namesFile  string
	ranksFile  string
	group      int
	kind       string
	cost       bool
	compare    bool
	width      int
	mode       string
	count      int
}

func (*figureCmd) Name() string     { return "figure" }
func (*figureCmd) Synopsis() string { return "build the price or return chart of a group" }
func (*figureCmd) Usage() string {
	return `ddf figure -g <group> -w <width> [-kind price|return] [-cost] [-compare] [-r <ranks> -mode <mode> -n <count>]

Prints, as JSON, the chart of a group of funds:
  - price:  the price history, one line per fund.
  - return: the annualized returns, one bar per fund and price column.

With -cost the prices after fees are shown, with -compare the prices rebased
to a common base. With a ranks file only the selected funds are shown.
`
}

func (c *figureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "f", "", "Prices file (CSV or xlsx). Defaults to the configured one.")
	f.StringVar(&c.namesFile, "names", "", "Fund names file (CSV or xlsx). Defaults to the configured one.")
	f.StringVar(&c.ranksFile, "r", "", "Ranks file to select funds. Defaults to the configured one.")
	f.IntVar(&c.group, "g", 0, "Group of funds, e.g. the target year.")
	f.StringVar(&c.kind, "kind", "price", "Chart kind: price or return.")
	f.BoolVar(&c.cost, "cost", false, "Show prices after fees.")
	f.BoolVar(&c.compare, "compare", false, "Show prices rebased to a common base.")
	f.IntVar(&c.width, "w", -1, "Viewport width in pixels.")
	f.StringVar(&c.mode, "mode", string(fundview.Top), "Selection mode: Top, Bottom or Random.")
	f.IntVar(&c.count, "n", -1, "Maximum number of funds. Defaults to the configured count.")
}

func (c *figureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.width < 0 {
		fmt.Fprintln(os.Stderr, "Error: -w flag is required.")
		return subcommands.ExitUsageError
	}
	var build func(*fundview.GroupData, fundview.FigureOptions) fundview.Figure
	switch c.kind {
	case "price":
		build = fundview.PriceFigure
	case "return":
		build = fundview.ReturnFigure
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q, want price or return\n", c.kind)
		return subcommands.ExitUsageError
	}
	mode, ok := parseMode(c.mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q, want Top, Bottom or Random\n", c.mode)
		return subcommands.ExitUsageError
	}

	g, err := loadGroup(cfg, c.pricesFile, c.namesFile, c.group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ranks, err := loadRanks(or(c.ranksFile, cfg.Data.RanksFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ranks: %v\n", err)
		return subcommands.ExitFailure
	}
	count := cfg.Count
	if c.count >= 0 {
		count = c.count
	}

	o := fundview.FigureOptions{
		Cost:     c.cost,
		Compare:  c.compare,
		Width:    c.width,
		Viewport: cfg.ViewportSettings(),
	}
	if len(g.Columns) > 0 {
		if v := g.Default[g.Columns[0]]; v != nil {
			o.Names = v.Names(mode, ranks, count)
		}
	}

	out, err := json.Marshal(build(g, o))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding figure: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
