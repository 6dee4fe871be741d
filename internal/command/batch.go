package command

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nstefanovic/folproof/internal/axiomfile"
	"github.com/nstefanovic/folproof/internal/batch"
	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
	"github.com/nstefanovic/folproof/internal/telemetry"
	"github.com/nstefanovic/folproof/internal/writer"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// BatchCommand proves many queries against one axiom set concurrently.
// Theory.Draw is documented as unsafe for concurrent use on a single
// instance (spec.md §5), so each query gets its own Theory seeded from
// the shared, immutable axiom slice; the pool only parallelizes the
// independent Draw calls, never a shared cache.
type BatchCommand struct {
	Meta
}

func (c *BatchCommand) Help() string {
	return strings.TrimSpace(`
Usage: folproof batch -axioms <file.yaml> -queries <file> [options]

  Proves every formula in <file> (one per line, blank lines and lines
  starting with # ignored) against the axiom set in <file.yaml>,
  running up to -max-workers proofs concurrently.

Options:

  -max-workers   Upper bound on concurrent Draw calls (default: NumCPU).
  -min-workers   Worker count to start with (default: 1).
`)
}

func (c *BatchCommand) Synopsis() string {
	return "Prove many queries against one axiom set concurrently"
}

type batchResult struct {
	line  int
	query string
	f     fol.Formula
	ok    bool
	err   error
}

func (c *BatchCommand) Run(args []string) int {
	flags := flag.NewFlagSet("batch", flag.ContinueOnError)
	axiomsPath := flags.String("axioms", "", "path to a YAML axiom file")
	queriesPath := flags.String("queries", "", "path to a newline-delimited query file")
	maxWorkers := flags.Int("max-workers", 0, "maximum concurrent Draw calls")
	minWorkers := flags.Int("min-workers", 1, "initial worker count")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if *axiomsPath == "" || *queriesPath == "" {
		c.Ui.Error("batch: usage: folproof batch -axioms <file.yaml> -queries <file>")
		return 1
	}

	af, err := axiomfile.Load(*axiomsPath)
	if err != nil {
		c.Ui.Error("batch: " + err.Error())
		return 1
	}
	dict := dictionary.New()
	axioms, err := axiomfile.Parse(af, dict)
	if err != nil {
		c.Ui.Error("batch: loading axioms: " + err.Error())
		return 1
	}

	lines, err := readQueryLines(*queriesPath)
	if err != nil {
		c.Ui.Error("batch: " + err.Error())
		return 1
	}

	// Parsing mutates dict's scope maps, so every query is parsed here,
	// single-threaded, before any goroutine touches it. Only the pure
	// Theory.Draw calls below run on the pool.
	results := make([]batchResult, len(lines))
	for i, line := range lines {
		results[i] = batchResult{line: line.n, query: line.text}
		f, err := reader.New(line.text, dict).ParseFormula()
		if err != nil {
			results[i].err = err
			continue
		}
		results[i].f = f
	}

	w := writer.New(writer.ASCII, dict)
	tel := telemetry.New(telemetry.Options{Name: "folproof-batch"})

	pool := batch.NewWorkerPool(*maxWorkers, *minWorkers)
	var wg sync.WaitGroup
	ctx := context.Background()

	for i := range results {
		if results[i].err != nil {
			continue
		}
		i := i
		wg.Add(1)
		submitErr := pool.Submit(ctx, func() {
			defer wg.Done()
			theory := fol.NewTheory(axioms, fol.WithLogger(tel.Logger), fol.WithStats(tel.Stats))
			results[i].ok = theory.Draw(results[i].f)
		})
		if submitErr != nil {
			wg.Done()
			results[i].err = submitErr
		}
	}
	wg.Wait()
	pool.Shutdown()

	failures := 0
	for _, r := range results {
		status := "theorem"
		rendered := r.query
		switch {
		case r.err != nil:
			status = "error: " + r.err.Error()
			failures++
		case !r.ok:
			rendered = w.Write(r.f)
			status = "not proved"
			failures++
		default:
			rendered = w.Write(r.f)
		}
		c.Ui.Output(fmt.Sprintf("%d: %s -- %s", r.line, rendered, status))
	}

	snap := pool.Stats().Snapshot()
	c.Ui.Info(fmt.Sprintf("completed %d/%d, avg draw %s", snap.Completed, len(lines), snap.AverageTaskDuration))

	if failures > 0 {
		return 2
	}
	return 0
}

type queryLine struct {
	n    int
	text string
}

func readQueryLines(path string) ([]queryLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []queryLine
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, queryLine{n: n, text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
