package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rsarin/fundwatch/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It returns immediately unless the
// shell invoked the binary to complete a command line.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"book": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"import": {
				Args: predict.Files("*.xlsx"),
			},
			"changes": {},
			"holding": {},
			"months":  {},
			"query":   {},
			"topic":   {},
		},
	}
	c.Complete("fw")
}
