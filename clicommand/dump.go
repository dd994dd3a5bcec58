package clicommand

import (
	"fmt"
	"sort"

	"github.com/buildkite/jobvars/internal/redact"
	"github.com/buildkite/jobvars/variables"
	"github.com/urfave/cli"
)

const dumpHelpDescription = `Usage:

   jobvars dump [options...]

Description:
   Prints every variable in every scope, one per line, as
   ′scope name=value′. Lines are sorted by scope, then name.

   Secret values, and any other value that contains one, are replaced with
   [REDACTED].

Example:

   $ jobvars dump --seed job.yml --secret-env-file secrets.env
   org DEPLOY_REGION=us-east-1
   final NPM_TOKEN=[REDACTED]
   final build.number=42`

var DumpCommand = cli.Command{
	Name:        "dump",
	Usage:       "Prints all variables, with secrets redacted",
	Description: dumpHelpDescription,
	Flags:       withStoreFlags(),
	Action:      dumpAction,
}

func dumpAction(c *cli.Context) error {
	l, err := setupLogger(c)
	if err != nil {
		return err
	}

	store, masker, err := loadStore(c, l)
	if err != nil {
		return err
	}

	for _, scope := range variables.Scopes() {
		vars := store.Variables(scope)
		lines := make([]string, 0, len(vars))
		for _, v := range vars {
			value := masker.Redact(v.Value())
			// Short secrets are not registered with the masker.
			if v.Secret() {
				value = redact.Redacted
			}
			lines = append(lines, v.Name()+"="+value)
		}
		sort.Strings(lines)

		for _, line := range lines {
			fmt.Fprintf(c.App.Writer, "%s %s\n", scope, line)
		}
	}
	return nil
}
