package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type monthsCmd struct{}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list the imported months in chronological order" }
func (*monthsCmd) Usage() string {
	return `fw months

  Lists every month present in the book, oldest first. Month labels do not
  sort chronologically as strings, so the list is ordered by parsed
  year and month.
`
}

func (c *monthsCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()
	if book.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No months imported yet. Use 'fw import' first.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Imported months\n\n")
	for _, m := range book.Months() {
		holdings, _ := book.Holdings(m)
		fmt.Fprintf(&b, "* %s: %d holdings\n", m, len(holdings))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
