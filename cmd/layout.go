package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundview"
	"github.com/google/subcommands"
)

type layoutCmd struct {
	width      int
	x, y       float64
	breakpoint int
	query      string
}

func (*layoutCmd) Name() string     { return "layout" }
func (*layoutCmd) Synopsis() string { return "adapt a chart layout to the viewport width" }
func (*layoutCmd) Usage() string {
	return `ddf layout -w <width> [-x <x>] [-y <y>] [-breakpoint <px>] [-q <jsonpath>] [file]

Reads a chart layout in JSON from file, or from the standard input, and prints
it adapted to a viewport width. Below the breakpoint the legend moves below the
chart and the side margins are removed.

With -q, only the part of the result selected by the JSONPath expression is
printed, e.g. -q '$.legend.orientation'.
`
}

func (c *layoutCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", -1, "Viewport width in pixels.")
	f.Float64Var(&c.x, "x", fundview.DefaultViewport.X, "Legend x position on narrow viewports. Defaults to the configured one.")
	f.Float64Var(&c.y, "y", fundview.DefaultViewport.Y, "Legend y position on narrow viewports. Defaults to the configured one.")
	f.IntVar(&c.breakpoint, "breakpoint", fundview.DefaultViewport.Breakpoint, "Width below which the viewport is narrow. Defaults to the configured one.")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting the part of the layout to print.")
}

func (c *layoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.width < 0 {
		fmt.Fprintln(os.Stderr, "Error: -w flag is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one layout file.")
		return subcommands.ExitUsageError
	}

	// Flags set on the command line take precedence over the configuration.
	viewport := cfg.ViewportSettings()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "x":
			viewport.X = c.x
		case "y":
			viewport.Y = c.y
		case "breakpoint":
			viewport.Breakpoint = c.breakpoint
		}
	})

	var r io.Reader = os.Stdin
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening layout: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	var layout fundview.Layout
	if err := json.NewDecoder(r).Decode(&layout); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding layout: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := query(fundview.UpdateLayoutForViewport(layout, c.width, viewport), c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// query returns the JSON of the part of v selected by path, or of v if path is empty.
func query(v any, path string) ([]byte, error) {
	if path == "" {
		return json.Marshal(v)
	}
	// work on the plain JSON representation of v.
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var plain any
	if err := json.Unmarshal(b, &plain); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, plain)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return json.Marshal(res)
}
