package main

import (
	"os"

	"github.com/buildkite/jobvars/clicommand"
	"github.com/buildkite/jobvars/version"
	"github.com/urfave/cli"
)

const appHelpTemplate = `Usage:

  {{.Name}} <command> [options...]

Available commands are:

  {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
  {{end}}
Use "{{.Name}} <command> --help" for more information about a command.

`

func newApp() *cli.App {
	cli.AppHelpTemplate = appHelpTemplate

	app := cli.NewApp()
	app.Name = "jobvars"
	app.Usage = "Inspect the scoped variables of a job"
	app.Version = version.FullVersion()
	app.Commands = clicommand.JobVarsCommands
	app.ErrWriter = os.Stderr

	// When no sub command is used
	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	// When a sub command can't be found
	app.CommandNotFound = func(c *cli.Context, command string) {
		cli.ShowAppHelp(c)
		os.Exit(1)
	}

	return app
}

func main() {
	app := newApp()
	os.Exit(clicommand.PrintMessageAndReturnExitCode(app.ErrWriter, app.Run(os.Args)))
}
