package clicommand

import (
	"fmt"
	"strconv"

	"github.com/buildkite/jobvars/variables"
	"github.com/urfave/cli"
)

const getHelpDescription = `Usage:

   jobvars get <name> [options...]

Description:
   Prints the value of one variable. Names are case-insensitive.

   With ′--type′ the value is parsed before it is printed: bool, int, long
   and guid. int, long and guid only read the final scope.

   Exits with status 1 if the variable is not set, or does not parse as the
   requested type.

Example:

   $ jobvars get build.number --seed job.yml
   42

   $ jobvars get ACTIONS_STEP_DEBUG --type bool --seed job.yml
   true`

var GetCommand = cli.Command{
	Name:        "get",
	Usage:       "Prints the value of a variable",
	Description: getHelpDescription,
	Flags: withStoreFlags(
		ScopeFlag,
		cli.StringFlag{
			Name:   "type",
			Value:  "string",
			Usage:  "Parse the value as one of: string, bool, int, long, guid",
			EnvVar: "BUILDKITE_JOBVARS_GET_TYPE",
		},
	),
	Action: getAction,
}

func getAction(c *cli.Context) error {
	if len(c.Args()) != 1 {
		return fmt.Errorf("expected exactly one variable name, got %d arguments", len(c.Args()))
	}
	name := c.Args().First()

	scope, err := scopeFromFlag(c)
	if err != nil {
		return err
	}

	l, err := setupLogger(c)
	if err != nil {
		return err
	}

	store, _, err := loadStore(c, l)
	if err != nil {
		return err
	}

	typ := c.String("type")
	switch typ {
	case "int", "long", "guid":
		if scope != variables.Final {
			return fmt.Errorf("--type %s only reads the final scope", typ)
		}
	}

	var (
		out string
		ok  bool
	)
	switch typ {
	case "string":
		out, ok = store.Get(name, scope)

	case "bool":
		var b bool
		b, ok = store.GetBoolean(name, scope)
		out = strconv.FormatBool(b)

	case "int":
		var n int
		n, ok = store.GetInt(name)
		out = strconv.Itoa(n)

	case "long":
		var n int64
		n, ok = store.GetLong(name)
		out = strconv.FormatInt(n, 10)

	case "guid":
		id, found := store.GetGuid(name)
		out, ok = id.String(), found

	default:
		return fmt.Errorf("invalid --type %q: must be one of string, bool, int, long or guid", typ)
	}

	if !ok {
		if typ == "string" {
			return NewExitError(1, fmt.Errorf("%q is not set in the %s scope", name, scope))
		}
		return NewExitError(1, fmt.Errorf("%q is not set in the %s scope, or is not a valid %s", name, scope, typ))
	}

	fmt.Fprintln(c.App.Writer, out)
	return nil
}
