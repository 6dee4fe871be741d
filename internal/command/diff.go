package command

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffText renders a before/after pair as a plain-text unified diff,
// prefixing inserted spans with '+' and deleted spans with '-', the
// way a terminal diff reads rather than go-diff's HTML-oriented
// DiffPrettyText.
func diffText(before, after string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("+" + d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("-" + d.Text)
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
