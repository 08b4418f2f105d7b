package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/devinhero/ledgers/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"session": {
				Flags: map[string]complete.Predictor{
					"c": predict.Set{"USD", "EUR", "GBP", "JPY"},
				},
			},
			"topic": {
				Args: predict.Set{"readme", "session", "amounts"},
			},
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
