package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundview/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print the ddf manual, or some of its topics" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString(`ddf topic [<topic>...]

Prints the ddf manual. Without a topic the overview is printed, '*' prints every topic.

Topics:
`)
	topics, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(&b, "  (unavailable: %v)\n", err)
		return b.String()
	}
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			title = "?"
		}
		fmt.Fprintf(&b, "  %-12s %s\n", topic, title)
	}
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	manual, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, see 'ddf help topic' for the list of topics\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(manual)

	return subcommands.ExitSuccess
}
