// Package axiomfile loads named axiom sets from YAML, the format
// cmd/folproof's `prove` and `repl` subcommands accept via --axioms.
// Parsing leans on goccy/go-yaml the way the pack's tony-format repo
// loads its own build manifests (dirbuild/dir.go).
package axiomfile

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
	"github.com/nstefanovic/folproof/pkg/fol"
)

// File is the on-disk shape of an axiom set: a named theory plus the
// concrete-syntax source of each axiom, parsed against one shared
// dictionary so axioms and later queries can refer to the same
// constants and relations by name.
type File struct {
	Theory  string   `yaml:"theory"`
	Axioms  []string `yaml:"axioms"`
	Comment string   `yaml:"comment,omitempty"`
}

// Load reads and parses path into a File descriptor.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("axiomfile: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("axiomfile: parse %s: %w", path, err)
	}
	return &f, nil
}

// Parse parses f's axiom sources against dict and returns the parsed
// formulas. dict is filled in place, so a caller can parse a further
// query against the same symbol namespace.
func Parse(f *File, dict *dictionary.Dictionary) ([]fol.Formula, error) {
	return reader.ParseAxioms(f.Axioms, dict)
}
