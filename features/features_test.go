package features

import (
	"fmt"
	"testing"

	"github.com/buildkite/jobvars/env"
	"github.com/buildkite/jobvars/variables"
	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T, flag string) *variables.Store {
	t.Helper()

	seed := variables.Seed{}
	if flag != "" {
		seed.Add(variables.Final, AllowRunnerContainerHooks, flag, false)
	}
	return variables.NewStore(nil, nil, seed)
}

func TestContainerHooksEnabledTruthTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag    string // "" means not set
		environ []string
		want    bool
	}{
		{flag: "true", environ: []string{ContainerHooksPath + "=/opt/hooks/index.js"}, want: true},
		{flag: "True", environ: []string{ContainerHooksPath + "=/opt/hooks/index.js"}, want: true},
		{flag: "true", environ: []string{ContainerHooksPath + "="}, want: false},
		{flag: "true", environ: nil, want: false},
		{flag: "false", environ: []string{ContainerHooksPath + "=/opt/hooks/index.js"}, want: false},
		{flag: "", environ: []string{ContainerHooksPath + "=/opt/hooks/index.js"}, want: false},
		{flag: "yes", environ: []string{ContainerHooksPath + "=/opt/hooks/index.js"}, want: false},
		{flag: "false", environ: nil, want: false},
		{flag: "", environ: nil, want: false},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("flag=%q/env=%q", test.flag, test.environ), func(t *testing.T) {
			t.Parallel()

			store := newStore(t, test.flag)
			got := ContainerHooksEnabled(store, env.FromSlice(test.environ))
			assert.Equal(t, test.want, got)
		})
	}
}

func TestContainerHooksEnabledFlagInOtherScope(t *testing.T) {
	t.Parallel()

	seed := variables.Seed{}
	seed.Add(variables.Org, AllowRunnerContainerHooks, "true", false)
	seed.Add(variables.Repo, AllowRunnerContainerHooks, "true", false)
	store := variables.NewStore(nil, nil, seed)

	environ := env.FromSlice([]string{ContainerHooksPath + "=/opt/hooks/index.js"})
	assert.False(t, ContainerHooksEnabled(store, environ))
}

func TestContainerHooksEnabledNilInputs(t *testing.T) {
	t.Parallel()

	environ := env.FromSlice([]string{ContainerHooksPath + "=/opt/hooks/index.js"})

	assert.False(t, ContainerHooksEnabled(nil, environ))

	var store *variables.Store
	assert.False(t, ContainerHooksEnabled(store, environ))

	assert.False(t, ContainerHooksEnabled(newStore(t, "true"), nil))
}

func TestIsContainerHooksEnabledReadsProcessEnvironment(t *testing.T) {
	store := newStore(t, "true")

	t.Setenv(ContainerHooksPath, "")
	assert.False(t, IsContainerHooksEnabled(store))

	t.Setenv(ContainerHooksPath, "/opt/hooks/index.js")
	assert.True(t, IsContainerHooksEnabled(store))
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Enabled(newStore(t, "false")))
	assert.Equal(t, []string{AllowRunnerContainerHooks}, Enabled(newStore(t, "TRUE")))
	assert.Empty(t, Enabled(nil))
}
