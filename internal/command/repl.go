package command

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/nstefanovic/folproof/internal/axiomfile"
	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
	"github.com/nstefanovic/folproof/internal/telemetry"
	"github.com/nstefanovic/folproof/internal/writer"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// ReplCommand is an interactive loop over one Theory: each line is
// parsed as a formula and drawn against the theory's axiom set, with a
// handful of `:`-prefixed meta-commands for inspecting the session.
type ReplCommand struct {
	Meta
}

func (c *ReplCommand) Help() string {
	return strings.TrimSpace(`
Usage: folproof repl [-axioms <file.yaml>]

  Starts an interactive session. Each line is parsed as a formula and
  drawn against the loaded axioms. Meta-commands:

    :axioms     list the loaded axioms
    :theorems   list formulas proved so far this session
    :simplify F print the simplified normal form of F instead of proving it
    :quit       exit

  A successful query that adds to the theorem cache prints a diff of
  the cache before and after the draw, showing the newly cached formula.
`)
}

func (c *ReplCommand) Synopsis() string {
	return "Interactive proof session"
}

func (c *ReplCommand) Run(args []string) int {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)
	axiomsPath := flags.String("axioms", "", "path to a YAML axiom file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	dict := dictionary.New()
	var axioms []fol.Formula

	if *axiomsPath != "" {
		af, err := axiomfile.Load(*axiomsPath)
		if err != nil {
			c.Ui.Error("repl: " + err.Error())
			return 1
		}
		axioms, err = axiomfile.Parse(af, dict)
		if err != nil {
			c.Ui.Error("repl: loading axioms: " + err.Error())
			return 1
		}
	}

	tel := telemetry.New(telemetry.Options{Name: "folproof-repl", Level: hclog.Warn})
	theory := fol.NewTheory(axioms, fol.WithLogger(tel.Logger), fol.WithStats(tel.Stats))
	out := writer.NewColored(writer.Unicode, dict)

	c.Ui.Info(fmt.Sprintf("folproof repl: %d axiom(s) loaded, :quit to exit", len(axioms)))

	for {
		line, err := c.Ui.Ask("fol> ")
		if err != nil {
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == ":quit":
			return 0

		case line == ":axioms":
			for _, a := range theory.Axioms() {
				c.Ui.Output(out.Write(a))
			}
			continue

		case line == ":theorems":
			for _, t := range theory.Theorems() {
				c.Ui.Output(out.Write(t))
			}
			continue

		case strings.HasPrefix(line, ":simplify "):
			src := strings.TrimPrefix(line, ":simplify ")
			f, err := reader.New(src, dict).ParseFormula()
			if err != nil {
				c.Ui.Error(err.Error())
				continue
			}
			c.Ui.Output(out.Write(f.Simplify()))
			continue
		}

		f, err := reader.New(line, dict).ParseFormula()
		if err != nil {
			c.Ui.Error(err.Error())
			continue
		}

		before := theoremCacheText(theory, out)
		ok := theory.Draw(f)
		if !ok {
			c.Ui.Output("not proved: " + out.Write(f))
			continue
		}

		c.Ui.Output("theorem: " + out.Write(f))
		if after := theoremCacheText(theory, out); after != before {
			c.Ui.Info(diffText(before, after))
		}
	}
}

// theoremCacheText renders the theory's current theorem cache as one
// newline-joined block, so two snapshots can be diffed with go-diff to
// show what a successful Draw just added.
func theoremCacheText(theory *fol.Theory, out *writer.Writer) string {
	theorems := theory.Theorems()
	lines := make([]string, len(theorems))
	for i, t := range theorems {
		lines[i] = out.Write(t)
	}
	return strings.Join(lines, "\n")
}
