package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsarin/fundwatch"
	"github.com/rsarin/fundwatch/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	month string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the holdings imported for a month" }
func (*holdingCmd) Usage() string {
	return `fw holding -m "<Month Year>"

  Displays the full holding list recorded for a month, with market values
  in lakhs and rupees.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", `Month to display, e.g. "September 2024".`)
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()
	report, err := fundwatch.NewHoldingReport(book, c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating holding report: %v\n", err)
		if errors.Is(err, fundwatch.ErrInvalidPeriod) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(report))
	return subcommands.ExitSuccess
}
