package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/etnz/fundview"
	"github.com/google/subcommands"
)

type selectCmd struct {
	ranksFile string
	mode      string
	count     int
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select funds by rank" }
func (*selectCmd) Usage() string {
	return `ddf select [-r <ranks>] [-mode Top|Bottom|Random] [-n <count>] [name...]

Prints, one per line, at most count names among the ranked ones:
  - Top:    lowest ranks first.
  - Bottom: highest ranks first.
  - Random: in random order.

Without names, every ranked name is a candidate.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ranksFile, "r", "", "Ranks file (CSV with name and rank). Defaults to the configured one.")
	f.StringVar(&c.mode, "mode", string(fundview.Top), "Selection mode: Top, Bottom or Random.")
	f.IntVar(&c.count, "n", -1, "Maximum number of names. Defaults to the configured count.")
}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	mode, ok := parseMode(c.mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q, want Top, Bottom or Random\n", c.mode)
		return subcommands.ExitUsageError
	}
	count := cfg.Count
	if c.count >= 0 {
		count = c.count
	}

	path := or(c.ranksFile, cfg.Data.RanksFile)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: a ranks file is required, use -r or configure data.ranks_file.")
		return subcommands.ExitUsageError
	}
	ranks, err := loadRanks(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ranks: %v\n", err)
		return subcommands.ExitFailure
	}

	names := f.Args()
	if len(names) == 0 {
		names = slices.Sorted(maps.Keys(ranks))
	}
	for _, name := range fundview.SelectTickers(mode, names, ranks, count) {
		fmt.Fprintln(stdout, name)
	}
	return subcommands.ExitSuccess
}

func parseMode(s string) (fundview.Mode, bool) {
	mode := fundview.Mode(s)
	return mode, slices.Contains([]fundview.Mode{fundview.Top, fundview.Bottom, fundview.Random}, mode)
}
