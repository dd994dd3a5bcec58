// Package clicommand contains the definitions of jobvars' subcommands.
//
// It is intended for internal use by jobvars only.
package clicommand

import "github.com/urfave/cli"

var JobVarsCommands = []cli.Command{
	GetCommand,
	DumpCommand,
	SecretsContextCommand,
	InterpolateCommand,
	FeaturesCommand,
}
