package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SLASHLogin/splitex/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	completion().Complete("spx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := map[string]*complete.Command{
		"join":     {},
		"rename":   {},
		"leave":    {},
		"add":      {Flags: map[string]complete.Predictor{"amount": predict.Something, "cur": predict.Something, "by": predict.Something, "for": predict.Something, "desc": predict.Something}},
		"edit":     {Flags: map[string]complete.Predictor{"amount": predict.Something, "cur": predict.Something, "by": predict.Something, "for": predict.Something, "desc": predict.Something}},
		"rm":       {Flags: map[string]complete.Predictor{"payment": predict.Nothing}},
		"pay":      {Flags: map[string]complete.Predictor{"from": predict.Something, "to": predict.Something, "amount": predict.Something, "cur": predict.Something}},
		"balances": {},
		"settle":   {},
		"log":      {Flags: map[string]complete.Predictor{"s": predict.Something, "d": predict.Something}},
		"rates":    {Flags: map[string]complete.Predictor{"set": predict.Something}},
		"export":   {},
		"import":   {Args: predict.Files("*.json")},
		"reset":    {},
		"topic":    {},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"state-file":   predict.Files("*.json"),
			"net-payments": predict.Nothing,
		},
	}
}
