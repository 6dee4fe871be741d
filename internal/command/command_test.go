package command

import "github.com/hashicorp/cli"

var (
	_ cli.Command = &ProveCommand{}
	_ cli.Command = &SimplifyCommand{}
	_ cli.Command = &ReplCommand{}
	_ cli.Command = &BatchCommand{}
)
