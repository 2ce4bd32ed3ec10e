package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rsarin/fundwatch"
	"github.com/rsarin/fundwatch/renderer"
)

// changesCmd holds the flags for the 'changes' subcommand.
type changesCmd struct {
	start string
	end   string
}

func (*changesCmd) Name() string { return "changes" }
func (*changesCmd) Synopsis() string {
	return "show how matching holdings moved between two imported months"
}
func (*changesCmd) Usage() string {
	return `fw changes -s "<Month Year>" -e "<Month Year>" [<fund name query>]

  Joins the holdings of the two months by ISIN and reports, for every fund
  of the end month whose name contains the query (case-insensitive), the
  change in quantity, market value and %-to-NAV. Funds absent from the
  start month are reported as new additions. An empty query matches all
  funds.

Usage Examples:
$ fw changes -s "September 2024" -e "October 2024" bluechip

`
}

func (c *changesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", `Start month, e.g. "September 2024".`)
	f.StringVar(&c.end, "e", "", `End month, e.g. "October 2024".`)
}

func (c *changesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(strings.Join(f.Args(), " "))

	book := LoadBook()
	report, err := fundwatch.NewChangeReport(book, query, c.start, c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing changes: %v\n", err)
		if errors.Is(err, fundwatch.ErrInvalidPeriod) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Changes(report))
	return subcommands.ExitSuccess
}
