package axiomfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nstefanovic/folproof/internal/dictionary"
	"github.com/nstefanovic/folproof/internal/reader"
)

func TestLoadAndParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axioms.yaml")
	contents := `
theory: toy
axioms:
  - "R_p(c_a)"
  - "forall(v_x) (R_p(v_x) imp R_q(v_x))"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "toy", f.Theory)
	require.Len(t, f.Axioms, 2)

	formulas, err := Parse(f, dictionary.New())
	require.NoError(t, err)
	require.Len(t, formulas, 2)
}

func TestParsePreservesSourceOrderAndStructure(t *testing.T) {
	dict := dictionary.New()
	f := &File{Axioms: []string{"R_p(c_a)", "forall(v_x) (R_p(v_x) imp R_q(v_x))"}}
	formulas, err := Parse(f, dict)
	require.NoError(t, err)
	require.Len(t, formulas, len(f.Axioms))

	// Re-running the same axiom source against the dictionary Parse just
	// populated should resolve every name to the symbol already bound
	// there, not mint fresh ones -- go-cmp's diff (via fol.Formula's
	// Equal method) pinpoints exactly which axiom regressed if reader
	// ever started re-declaring names it should be looking up.
	for i, src := range f.Axioms {
		want, err := reader.New(src, dict).ParseFormula()
		require.NoError(t, err)
		if diff := cmp.Diff(want, formulas[i]); diff != "" {
			t.Fatalf("axiom %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseAggregatesErrors(t *testing.T) {
	f := &File{Axioms: []string{"and and and", "R_p(c_a)"}}
	_, err := Parse(f, dictionary.New())
	require.Error(t, err)
}
