// Package cmd implements the ddf command line application to compare funds.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundview"
	"github.com/etnz/fundview/config"
	"github.com/google/subcommands"
)

// Commands lists all ddf subcommands, in help order.
var Commands = []subcommands.Command{
	&cagrCmd{},
	&normalizeCmd{},
	&selectCmd{},
	&layoutCmd{},
	&prepareCmd{},
	&figureCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "ddf.yaml", "Path to the configuration file (YAML)")
var verbose = flag.Bool("v", false, "Print warnings about skipped or incomplete data")

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// loadConfig reads and validates the app configuration, and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", *configFile, err)
	}
	if *verbose || cfg.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return cfg, nil
}

// or returns v, or def if v is empty.
func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// loadNames reads the names file, a missing file means no names.
func loadNames(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	names, err := fundview.LoadNames(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, names file %q does not exist, funds are shown by ticker", path)
		return map[string]string{}, nil
	}
	return names, err
}

// loadRanks reads the ranks file, no file means no ranks.
func loadRanks(path string) (fundview.Ranks, error) {
	if path == "" {
		return fundview.Ranks{}, nil
	}
	return fundview.LoadRanks(path)
}

// loadGroup reads the prices file and prepares the datasets of one group.
func loadGroup(cfg *config.Config, pricesFile, namesFile string, group int) (*fundview.GroupData, error) {
	prices, err := fundview.LoadPrices(or(pricesFile, cfg.Data.PricesFile))
	if err != nil {
		return nil, err
	}
	names, err := loadNames(or(namesFile, cfg.Data.NamesFile))
	if err != nil {
		return nil, err
	}
	groups, err := fundview.Prepare(prices, names, cfg.BasePrice)
	if err != nil {
		return nil, err
	}
	g, ok := groups[group]
	if !ok {
		return nil, fmt.Errorf("unknown group %d, want one of %v", group, prices.Groups())
	}
	return g, nil
}

// column returns the named price column, or the first one if name is empty.
func column(columns []string, name string) (string, error) {
	if len(columns) == 0 {
		return "", errors.New("no price column")
	}
	if name == "" {
		return columns[0], nil
	}
	for _, c := range columns {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown price column %q, want one of %q", name, columns)
}

// printMarkdown renders markdown for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Printf("warning, cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}
