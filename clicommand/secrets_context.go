package clicommand

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"
)

const secretsContextHelpDescription = `Usage:

   jobvars secrets-context [options...]

Description:
   Prints the secrets context for a scope as a JSON object: every secret
   variable in the scope, by name. The system access token and
   system.github.token are never included, even when they are marked secret.

   The output contains secret values. Don't log it.

Example:

   $ jobvars secrets-context --seed job.yml --format json-pretty
   {
     "NPM_TOKEN": "npm_abcdef123456"
   }`

var SecretsContextCommand = cli.Command{
	Name:        "secrets-context",
	Usage:       "Prints the secret variables of a scope as JSON",
	Description: secretsContextHelpDescription,
	Flags: withStoreFlags(
		ScopeFlag,
		cli.StringFlag{
			Name:   "format",
			Value:  "json",
			Usage:  "Output format: json or json-pretty",
			EnvVar: "BUILDKITE_JOBVARS_SECRETS_CONTEXT_FORMAT",
		},
	),
	Action: secretsContextAction,
}

func secretsContextAction(c *cli.Context) error {
	scope, err := scopeFromFlag(c)
	if err != nil {
		return err
	}

	format := c.String("format")
	if format != "json" && format != "json-pretty" {
		return fmt.Errorf("invalid --format %q: must be json or json-pretty", format)
	}

	l, err := setupLogger(c)
	if err != nil {
		return err
	}

	store, _, err := loadStore(c, l)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	if format == "json-pretty" {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(store.ToSecretsContext(scope)); err != nil {
		return fmt.Errorf("encoding secrets context: %w", err)
	}
	return nil
}
