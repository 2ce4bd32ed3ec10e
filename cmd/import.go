package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsarin/fundwatch"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	month string
	sheet string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import a monthly disclosure spreadsheet into the book"
}
func (*importCmd) Usage() string {
	return `fw import -m "<Month Year>" [-sheet <name>] <disclosure.xlsx>

  Extracts the holdings from a fund house disclosure spreadsheet and records
  them under the given month. Re-importing a month replaces its previous
  holdings entirely.

Usage Examples:
$ fw import -m "September 2024" disclosures/sep-2024.xlsx

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", `Month to record the holdings under, e.g. "September 2024".`)
	f.StringVar(&c.sheet, "sheet", "", "Sheet to read. Defaults to the first sheet of the workbook.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the path to the disclosure spreadsheet.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()
	m, holdings, err := book.ImportFile(c.month, f.Arg(0), c.sheet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		if errors.Is(err, fundwatch.ErrInvalidPeriod) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		// The month is replaced in memory but nothing on disk changed.
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d holdings for %s into %s\n", len(holdings), m, *bookFile)
	return subcommands.ExitSuccess
}
