// Package features decides whether optional job execution features are
// enabled.
//
// Feature flags are boolean variables in the Final scope of a job's variable
// store. Some features also need something provisioned on the host, and are
// only enabled when both keys are present.
package features

import (
	"sort"

	"github.com/buildkite/jobvars/env"
	"github.com/buildkite/jobvars/variables"
)

// AllowRunnerContainerHooks is the feature flag that lets jobs run their
// container steps through the hooks implementation named by
// ContainerHooksPath.
const AllowRunnerContainerHooks = "DistributedTask.AllowRunnerContainerHooks"

const (
	// ContainerHooksPath is the environment variable holding the path to the
	// container hooks implementation on the host.
	ContainerHooksPath = "ACTIONS_RUNNER_CONTAINER_HOOKS"
)

// Available is the set of known feature flag names.
var Available = map[string]struct{}{
	AllowRunnerContainerHooks: {},
}

// Flags is the part of the variable store features are read from.
// *variables.Store satisfies it.
type Flags interface {
	GetBoolean(name string, scope variables.Scope) (bool, bool)
}

// IsContainerHooksEnabled reports whether container step hooks should be
// used, reading the hooks path from the environment of this process.
func IsContainerHooksEnabled(vars Flags) bool {
	return ContainerHooksEnabled(vars, env.Process())
}

// ContainerHooksEnabled reports whether container step hooks should be used.
// Both the feature flag and a non-empty hooks path in environ are required;
// neither is enough on its own.
func ContainerHooksEnabled(vars Flags, environ env.Lookuper) bool {
	flagSet := IsEnabled(vars, AllowRunnerContainerHooks)

	pathSet := false
	if environ != nil {
		path, ok := environ.Get(ContainerHooksPath)
		pathSet = ok && path != ""
	}

	return flagSet && pathSet
}

// IsEnabled reports whether the named feature flag is true. A missing or
// unparsable flag is false.
func IsEnabled(vars Flags, name string) bool {
	if vars == nil {
		return false
	}
	enabled, ok := vars.GetBoolean(name, variables.Final)
	return ok && enabled
}

// Enabled returns the names of the available feature flags that are enabled,
// sorted.
func Enabled(vars Flags) []string {
	var names []string
	for name := range Available {
		if IsEnabled(vars, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
