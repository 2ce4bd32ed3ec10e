package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath expression against the book file" }
func (*queryCmd) Usage() string {
	return `fw query '<jsonpath>'

  Evaluates a JSONPath expression against the raw book file and prints the
  result as JSON. Handy to inspect the persisted state without opening the
  file.

Usage Examples:
$ fw query '$["September 2024"][*].MutualFundDetails.Name'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide a single JSONPath expression.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(*bookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing book %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(f.Arg(0), jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	out, err := json.MarshalIndent(jval, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
