// Command folproof is a first-order tableau proof assistant: it parses
// a YAML axiom set and a query in the concrete syntax internal/reader
// defines, and reports whether the query is a theorem of the axioms.
//
// Subcommands are wired through hashicorp/cli the way hashicorp-nomad
// wires its own command table.
package main

import (
	"os"

	"github.com/hashicorp/cli"

	"github.com/nstefanovic/folproof/internal/command"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorBlue,
		ErrorColor:  cli.UiColorRed,
		WarnColor:   cli.UiColorYellow,
	}

	meta := command.Meta{Ui: ui}

	c := cli.NewCLI("folproof", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"prove": func() (cli.Command, error) {
			return &command.ProveCommand{Meta: meta}, nil
		},
		"simplify": func() (cli.Command, error) {
			return &command.SimplifyCommand{Meta: meta}, nil
		},
		"repl": func() (cli.Command, error) {
			return &command.ReplCommand{Meta: meta}, nil
		},
		"batch": func() (cli.Command, error) {
			return &command.BatchCommand{Meta: meta}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return exitCode
}
