package clicommand

import (
	"fmt"
	"os"
	"slices"

	"github.com/buildkite/jobvars/env"
	"github.com/buildkite/jobvars/features"
	"github.com/urfave/cli"
)

const featuresHelpDescription = `Usage:

   jobvars features [options...]

Description:
   Prints every known feature flag and whether it is set in the final scope,
   followed by whether container step hooks would be enabled.

   Container hooks need both the DistributedTask.AllowRunnerContainerHooks
   flag and a non-empty ACTIONS_RUNNER_CONTAINER_HOOKS environment variable.
   The environment of this process is used, with any ′--env′ overrides
   applied on top.

Example:

   $ jobvars features --seed job.yml --env ACTIONS_RUNNER_CONTAINER_HOOKS=/opt/hooks/index.js
   DistributedTask.AllowRunnerContainerHooks=true
   container-hooks=true`

var FeaturesCommand = cli.Command{
	Name:        "features",
	Usage:       "Prints which optional features are enabled",
	Description: featuresHelpDescription,
	Flags: withStoreFlags(
		cli.StringSliceFlag{
			Name:  "env",
			Usage: "Override an environment variable (KEY=VALUE) when evaluating features. May be repeated",
		},
	),
	Action: featuresAction,
}

func featuresAction(c *cli.Context) error {
	environ := env.FromSlice(os.Environ())
	for _, kv := range c.StringSlice("env") {
		k, v, ok := env.Split(kv)
		if !ok {
			return fmt.Errorf("invalid --env %q: expected KEY=VALUE", kv)
		}
		environ.Set(k, v)
	}

	l, err := setupLogger(c)
	if err != nil {
		return err
	}

	store, _, err := loadStore(c, l)
	if err != nil {
		return err
	}

	l.Debug("Evaluating features against %d environment variables", environ.Length())

	names := make([]string, 0, len(features.Available))
	for name := range features.Available {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(c.App.Writer, "%s=%t\n", name, features.IsEnabled(store, name))
	}
	fmt.Fprintf(c.App.Writer, "container-hooks=%t\n", features.ContainerHooksEnabled(store, environ))
	return nil
}
