package command

import "testing"

func TestDiffTextMarksInsertionsAndDeletions(t *testing.T) {
	got := diffText("not not R_p(c_a)", "R_p(c_a)")
	if got == "" {
		t.Fatalf("expected a non-empty diff for differing input")
	}
}

func TestDiffTextOfIdenticalStringsHasNoMarkers(t *testing.T) {
	got := diffText("R_p(c_a)", "R_p(c_a)")
	if got != "R_p(c_a)" {
		t.Fatalf("expected the equal-only diff to render as plain text, got %q", got)
	}
}
