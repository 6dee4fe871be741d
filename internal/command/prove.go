package command

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/nstefanovic/folproof/internal/axiomfile"
	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
	"github.com/nstefanovic/folproof/internal/telemetry"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// ProveCommand loads an axiom set and asks the tableau engine whether a
// query formula is a theorem of it.
type ProveCommand struct {
	Meta
}

func (c *ProveCommand) Help() string {
	return strings.TrimSpace(`
Usage: folproof prove -axioms <file.yaml> [options] <query>

  Loads the axiom set in <file.yaml> (see axiomfile.File for the
  expected shape), parses <query> against the same symbol namespace,
  and reports whether it is a theorem.

Options:

  -verbose       Log each tableau draw attempt to stderr.
  -metrics-addr  If set, serve Prometheus metrics on this address for
                 the duration of the command (e.g. ":9090").
`)
}

func (c *ProveCommand) Synopsis() string {
	return "Prove a query formula from a YAML axiom set"
}

func (c *ProveCommand) Run(args []string) int {
	flags := flag.NewFlagSet("prove", flag.ContinueOnError)
	axiomsPath := flags.String("axioms", "", "path to a YAML axiom file")
	verbose := flags.Bool("verbose", false, "log draw attempts to stderr")
	metricsAddr := flags.String("metrics-addr", "", "serve Prometheus metrics on this address while proving")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if *axiomsPath == "" || len(rest) != 1 {
		c.Ui.Error("prove: usage: folproof prove -axioms <file.yaml> <query>")
		return 1
	}

	af, err := axiomfile.Load(*axiomsPath)
	if err != nil {
		c.Ui.Error("prove: " + err.Error())
		return 1
	}

	dict := dictionary.New()
	axioms, err := axiomfile.Parse(af, dict)
	if err != nil {
		c.Ui.Error("prove: loading axioms: " + err.Error())
		return 1
	}

	query, err := reader.New(rest[0], dict).ParseFormula()
	if err != nil {
		c.Ui.Error("prove: parsing query: " + err.Error())
		return 1
	}

	level := hclog.Warn
	if *verbose {
		level = hclog.Debug
	}
	tel := telemetry.New(telemetry.Options{Name: "folproof-prove", Level: level})

	if *metricsAddr != "" {
		srv := startMetricsServer(*metricsAddr, tel)
		defer srv.Close()
	}

	theory := fol.NewTheory(axioms, fol.WithLogger(tel.Logger), fol.WithStats(tel.Stats))

	start := time.Now()
	ok := theory.Draw(query)
	elapsed := time.Since(start)

	if af.Theory != "" {
		c.Ui.Info(fmt.Sprintf("theory: %s", af.Theory))
	}
	if ok {
		c.Ui.Output(fmt.Sprintf("theorem (%s)", elapsed))
		return 0
	}
	c.Ui.Output(fmt.Sprintf("not a theorem, or undecided within this run (%s)", elapsed))
	return 2
}
