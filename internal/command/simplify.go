package command

import (
	"flag"
	"strings"

	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
	"github.com/nstefanovic/folproof/internal/writer"
)

// SimplifyCommand parses a single formula and prints its simplified
// normal form, using the ASCII glyph table by default so output can be
// fed straight back into `folproof prove`.
type SimplifyCommand struct {
	Meta
}

func (c *SimplifyCommand) Help() string {
	return strings.TrimSpace(`
Usage: folproof simplify [options] <formula>

  Parses <formula> and prints its bottom-up simplified normal form.

Options:

  -unicode    Render the result with Unicode connectives instead of ASCII keywords.
  -diff       Also print a character-level diff between the input and its normal form.
`)
}

func (c *SimplifyCommand) Synopsis() string {
	return "Simplify a formula to its normal form"
}

func (c *SimplifyCommand) Run(args []string) int {
	flags := flag.NewFlagSet("simplify", flag.ContinueOnError)
	unicode := flags.Bool("unicode", false, "render with Unicode connectives")
	showDiff := flags.Bool("diff", false, "print a diff between the input and its normal form")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 1 {
		c.Ui.Error("simplify: expected exactly one formula argument")
		return 1
	}

	dict := dictionary.New()
	f, err := reader.New(rest[0], dict).ParseFormula()
	if err != nil {
		c.Ui.Error("simplify: " + err.Error())
		return 1
	}

	glyphs := writer.ASCII
	if *unicode {
		glyphs = writer.Unicode
	}
	w := writer.New(glyphs, dict)
	before, after := w.Write(f), w.Write(f.Simplify())
	c.Ui.Output(after)

	if *showDiff {
		c.Ui.Info(diffText(before, after))
	}
	return 0
}
