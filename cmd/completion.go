package cmd

import (
	"flag"
	"io"

	"github.com/etnz/fundview/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags shared by several commands.
var flagPredictors = map[string]complete.Predictor{
	"f":     predict.Files("*"),
	"names": predict.Files("*"),
	"r":     predict.Files("*"),
	"o":     predict.Files("*"),
	"mode":  predict.Set{"Top", "Bottom", "Random"},
	"kind":  predict.Set{"price", "return"},
}

// Completion returns the shell completion of the ddf command line.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command, len(Commands)),
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.SetFlags(fs)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(fl *flag.Flag) {
			p, ok := flagPredictors[fl.Name]
			switch {
			case ok:
			case isBool(fl):
				p = predict.Nothing
			default:
				p = predict.Something
			}
			sub.Flags[fl.Name] = p
		})
		root.Sub[c.Name()] = sub
	}

	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	root.Sub["layout"].Args = predict.Files("*.json")
	return root
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
