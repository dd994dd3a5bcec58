package clicommand

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

const testSeed = `org:
  DEPLOY_REGION: us-east-1
repo:
  build.number: "7"
final:
  build.number: "42"
  ACTIONS_STEP_DEBUG: "TRUE"
  RUN_ID: "3fa85f64-5717-4562-b3fc-2c963f66afa6"
  NPM_TOKEN:
    value: npm_abcdef123456
    secret: true
  system.accessToken:
    value: access-token-value
    secret: true
  MESSAGE: "token is npm_abcdef123456"
  DistributedTask.AllowRunnerContainerHooks: "true"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runApp runs jobvars with args and returns what it wrote to stdout and
// stderr.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := cli.NewApp()
	app.Name = "jobvars"
	app.Commands = JobVarsCommands
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(append([]string{"jobvars"}, args...))
	return out.String(), errOut.String(), err
}

func TestGetCommand(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "final scope by default",
			args: []string{"get", "--seed", seed, "build.number"},
			want: "42\n",
		},
		{
			name: "other scope",
			args: []string{"get", "--seed", seed, "--scope", "repo", "build.number"},
			want: "7\n",
		},
		{
			name: "case insensitive name",
			args: []string{"get", "--seed", seed, "--scope", "org", "deploy_region"},
			want: "us-east-1\n",
		},
		{
			name: "bool",
			args: []string{"get", "--seed", seed, "--type", "bool", "ACTIONS_STEP_DEBUG"},
			want: "true\n",
		},
		{
			name: "int",
			args: []string{"get", "--seed", seed, "--type", "int", "build.number"},
			want: "42\n",
		},
		{
			name: "long",
			args: []string{"get", "--seed", seed, "--type", "long", "build.number"},
			want: "42\n",
		},
		{
			name: "guid",
			args: []string{"get", "--seed", seed, "--type", "guid", "RUN_ID"},
			want: "3fa85f64-5717-4562-b3fc-2c963f66afa6\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := runApp(t, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.want, stdout)
		})
	}
}

func TestGetCommand_Absent(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)

	for _, args := range [][]string{
		{"get", "--seed", seed, "NOPE"},
		{"get", "--seed", seed, "--scope", "org", "build.number"},
		{"get", "--seed", seed, "--type", "int", "DEPLOY_REGION"},
		{"get", "--seed", seed, "--type", "guid", "build.number"},
	} {
		stdout, _, err := runApp(t, args...)
		assert.Empty(t, stdout, "args: %v", args)

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "args: %v, err: %v", args, err)
		assert.Equal(t, 1, exitErr.Code())
	}
}

func TestGetCommand_UsageErrors(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)

	for _, args := range [][]string{
		{"get", "--seed", seed},
		{"get", "--seed", seed, "a", "b"},
		{"get", "--seed", seed, "--scope", "team", "build.number"},
		{"get", "--seed", seed, "--type", "float", "build.number"},
		{"get", "--seed", seed, "--type", "int", "--scope", "repo", "build.number"},
		{"get", "--seed", filepath.Join(t.TempDir(), "missing.yml"), "build.number"},
	} {
		_, _, err := runApp(t, args...)
		require.Error(t, err, "args: %v", args)
		assert.False(t, errors.Is(err, NewExitError(1, nil)), "args: %v", args)
	}
}

func TestGetCommand_EnvFiles(t *testing.T) {
	t.Parallel()

	orgEnv := writeFile(t, "org.env", "DEPLOY_REGION=eu-west-1\n")
	secretEnv := writeFile(t, "secrets.env", "NPM_TOKEN=npm_from_env_file\n")

	stdout, _, err := runApp(t, "get", "--org-env-file", orgEnv, "--scope", "org", "DEPLOY_REGION")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1\n", stdout)

	stdout, _, err = runApp(t, "get", "--secret-env-file", secretEnv, "NPM_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "npm_from_env_file\n", stdout)
}

func TestDumpCommand(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)
	short := writeFile(t, "short.env", "PIN=1234\n")

	stdout, _, err := runApp(t, "dump", "--seed", seed, "--secret-env-file", short)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, []string{
		"org DEPLOY_REGION=us-east-1",
		"repo build.number=7",
		"final ACTIONS_STEP_DEBUG=TRUE",
		"final DistributedTask.AllowRunnerContainerHooks=true",
		"final MESSAGE=token is [REDACTED]",
		"final NPM_TOKEN=[REDACTED]",
		"final PIN=[REDACTED]",
		"final RUN_ID=3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"final build.number=42",
		"final system.accessToken=[REDACTED]",
	}, lines)

	assert.NotContains(t, stdout, "npm_abcdef123456")
	assert.NotContains(t, stdout, "access-token-value")
}

func TestSecretsContextCommand(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed+"  system.github.token:\n    value: ghs_0123456789\n    secret: true\n")

	stdout, _, err := runApp(t, "secrets-context", "--seed", seed)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, map[string]string{"NPM_TOKEN": "npm_abcdef123456"}, got)

	stdout, _, err = runApp(t, "secrets-context", "--seed", seed, "--format", "json-pretty")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"NPM_TOKEN\": \"npm_abcdef123456\"\n}\n", stdout)

	stdout, _, err = runApp(t, "secrets-context", "--seed", seed, "--scope", "org")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", stdout)

	_, _, err = runApp(t, "secrets-context", "--seed", seed, "--format", "yaml")
	assert.Error(t, err)
}

func TestFeaturesCommand(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)

	stdout, _, err := runApp(t, "features", "--seed", seed, "--env", "ACTIONS_RUNNER_CONTAINER_HOOKS=/opt/hooks/index.js")
	require.NoError(t, err)
	assert.Equal(t, "DistributedTask.AllowRunnerContainerHooks=true\ncontainer-hooks=true\n", stdout)

	stdout, _, err = runApp(t, "features", "--seed", seed, "--env", "ACTIONS_RUNNER_CONTAINER_HOOKS=")
	require.NoError(t, err)
	assert.Equal(t, "DistributedTask.AllowRunnerContainerHooks=true\ncontainer-hooks=false\n", stdout)

	stdout, _, err = runApp(t, "features", "--env", "ACTIONS_RUNNER_CONTAINER_HOOKS=/opt/hooks/index.js")
	require.NoError(t, err)
	assert.Equal(t, "DistributedTask.AllowRunnerContainerHooks=false\ncontainer-hooks=false\n", stdout)

	_, _, err = runApp(t, "features", "--env", "=nope")
	assert.Error(t, err)
}

func TestInterpolateCommand(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)

	stdout, _, err := runApp(t, "interpolate", "--seed", seed, "--scope", "org", "deploying to $DEPLOY_REGION")
	require.NoError(t, err)
	assert.Equal(t, "deploying to us-east-1\n", stdout)

	stdout, _, err = runApp(t, "interpolate", "--seed", seed, "npm token: ${NPM_TOKEN}, region: ${DEPLOY_REGION:-none}")
	require.NoError(t, err)
	assert.Equal(t, "npm token: [REDACTED], region: none\n", stdout)

	stdout, _, err = runApp(t, "interpolate", "--seed", seed, "--skip-redaction", "$NPM_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "npm_abcdef123456\n", stdout)

	_, _, err = runApp(t, "interpolate", "--seed", seed, "${MISSING?is required}")
	assert.Error(t, err)
}

func TestInterpolateCommand_ShortSecrets(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", testSeed)
	short := writeFile(t, "short.env", "PIN=1234\n")

	stdout, _, err := runApp(t, "interpolate", "--seed", seed, "--secret-env-file", short, "pin is $PIN, token is $NPM_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "pin is [REDACTED], token is [REDACTED]\n", stdout)

	stdout, _, err = runApp(t, "interpolate", "--seed", seed, "--secret-env-file", short, "--skip-redaction", "pin is $PIN")
	require.NoError(t, err)
	assert.Equal(t, "pin is 1234\n", stdout)
}

func TestLogFormat(t *testing.T) {
	t.Parallel()

	seed := writeFile(t, "job.yml", "final:\n  \" \": dropped\n  build.number: \"42\"\n")

	_, stderr, err := runApp(t, "get", "--seed", seed, "--log-level", "info", "--log-format", "json", "build.number")
	require.NoError(t, err)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "final", entry["scope"])
	assert.Equal(t, "1", entry["dropped"])
	assert.Equal(t, "Removed 1 variables with empty variable name from final scope", entry["msg"])

	_, _, err = runApp(t, "get", "--seed", seed, "--log-format", "xml", "build.number")
	assert.Error(t, err)
}

func TestPrintMessageAndReturnExitCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 0, PrintMessageAndReturnExitCode(&buf, nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, 1, PrintMessageAndReturnExitCode(&buf, errors.New("boom")))
	assert.Equal(t, "jobvars: fatal: boom\n", buf.String())

	buf.Reset()
	assert.Equal(t, 3, PrintMessageAndReturnExitCode(&buf, NewExitError(3, errors.New("bang"))))
	assert.Equal(t, "jobvars: fatal: bang\n", buf.String())
}
