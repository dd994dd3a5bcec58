package clicommand

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/buildkite/jobvars/internal/redact"
	"github.com/buildkite/jobvars/variables"
	"github.com/urfave/cli"
)

const interpolateHelpDescription = `Usage:

   jobvars interpolate <template> [options...]

Description:
   Expands $NAME and ${NAME} references in the template using the variables
   of a scope, and prints the result. The shell forms ${NAME:-default},
   ${NAME-default} and ${NAME?message} are supported. Use $$ for a literal
   dollar sign.

   If the template is ′-′ it is read from standard input.

   Secret values in the output, however short, are replaced with [REDACTED]
   unless ′--skip-redaction′ is used.

Example:

   $ jobvars interpolate --seed job.yml 'deploying build ${BUILD_NUMBER:-0} to $DEPLOY_REGION'
   deploying build 42 to us-east-1`

var InterpolateCommand = cli.Command{
	Name:        "interpolate",
	Usage:       "Expands variable references in a string",
	Description: interpolateHelpDescription,
	Flags: withStoreFlags(
		ScopeFlag,
		cli.BoolFlag{
			Name:   "skip-redaction",
			Usage:  "Print secret values as they are",
			EnvVar: "BUILDKITE_JOBVARS_SKIP_REDACTION",
		},
	),
	Action: interpolateAction,
}

func interpolateAction(c *cli.Context) error {
	if len(c.Args()) != 1 {
		return fmt.Errorf("expected exactly one template, got %d arguments", len(c.Args()))
	}

	template := c.Args().First()
	if template == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading template from stdin: %w", err)
		}
		template = strings.TrimSuffix(string(b), "\n")
	}

	scope, err := scopeFromFlag(c)
	if err != nil {
		return err
	}

	l, err := setupLogger(c)
	if err != nil {
		return err
	}

	store, masker, err := loadStore(c, l)
	if err != nil {
		return err
	}

	out, err := store.Interpolate(template, scope)
	if err != nil {
		return fmt.Errorf("interpolating template: %w", err)
	}

	if !c.Bool("skip-redaction") {
		out = redactSecrets(masker.Redact(out), store.Variables(scope))
	}

	fmt.Fprintln(c.App.Writer, out)
	return nil
}

// redactSecrets replaces every secret value in vars that is still present in
// s. Secrets shorter than redact.LengthMin are never registered with the
// masker, so they are only caught here.
func redactSecrets(s string, vars []variables.Variable) string {
	var secrets []string
	for _, v := range vars {
		if v.Secret() && v.Value() != "" {
			secrets = append(secrets, v.Value())
		}
	}
	slices.SortFunc(secrets, func(a, b string) int { return len(b) - len(a) })

	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, redact.Redacted)
	}
	return s
}
