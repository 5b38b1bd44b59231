package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/robertmieta/cgt/cmd"
)

func main() {
	// Shell completion: when invoked through the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"calc": {
				Flags: map[string]complete.Predictor{
					"strategy":  predict.Set{"fifo", "minimize"},
					"discount":  predict.Nothing,
					"o":         predict.Dirs("*"),
					"no-export": predict.Nothing,
				},
				Args: predict.Files("*.csv"),
			},
			"holdings": {
				Flags: map[string]complete.Predictor{
					"strategy": predict.Set{"fifo", "minimize"},
				},
				Args: predict.Files("*.csv"),
			},
			"topic": {Args: predict.Set{"readme", "import", "strategies", "discount", "export", "*"}},
		},
	}
	completion.Complete("ccgt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
