package command

import (
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/stretchr/testify/require"
)

func TestReplCommand_provesThenQuits(t *testing.T) {
	ui := cli.NewMockUi()
	ui.InputReader = strings.NewReader("R_p(c_a)\n:quit\n")
	cmd := &ReplCommand{Meta{Ui: ui}}

	path := writeAxiomFile(t, testAxioms)
	code := cmd.Run([]string{"-axioms", path})
	require.Equal(t, 0, code)
	require.Contains(t, ui.OutputWriter.String(), "theorem")
}

func TestReplCommand_simplifyMetaCommand(t *testing.T) {
	ui := cli.NewMockUi()
	ui.InputReader = strings.NewReader(":simplify R_p(c_a) and true\n:quit\n")
	cmd := &ReplCommand{Meta{Ui: ui}}

	code := cmd.Run(nil)
	require.Equal(t, 0, code)
	require.Contains(t, ui.OutputWriter.String(), "R_p(c_a)")
}

func TestReplCommand_printsDiffWhenANewTheoremIsCached(t *testing.T) {
	ui := cli.NewMockUi()
	// R_q(c_a) is entailed but not itself an axiom, so proving it grows
	// the theorem cache and the REPL should show that as a diff.
	ui.InputReader = strings.NewReader("R_q(c_a)\n:quit\n")
	cmd := &ReplCommand{Meta{Ui: ui}}

	path := writeAxiomFile(t, testAxioms)
	code := cmd.Run([]string{"-axioms", path})
	require.Equal(t, 0, code)
	require.Contains(t, ui.OutputWriter.String(), "theorem")
	require.NotEmpty(t, ui.InfoWriter.String())
}

func TestReplCommand_exitsCleanlyOnEOF(t *testing.T) {
	ui := cli.NewMockUi()
	ui.InputReader = strings.NewReader("")
	cmd := &ReplCommand{Meta{Ui: ui}}

	code := cmd.Run(nil)
	require.Equal(t, 0, code)
}
