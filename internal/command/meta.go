// Package command implements cmd/folproof's subcommands against
// hashicorp/cli's Command interface, the way hashicorp-nomad's
// command package wires its own subcommands (command/version_test.go
// asserts `var _ cli.Command = &VersionCommand{}`).
package command

import (
	"github.com/hashicorp/cli"
)

// Meta holds the state every subcommand shares.
type Meta struct {
	Ui cli.Ui
}
