package clicommand

import (
	"fmt"
	"os"

	"github.com/buildkite/jobvars/internal/redact"
	"github.com/buildkite/jobvars/logger"
	"github.com/buildkite/jobvars/variables"
	"github.com/urfave/cli"
)

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode. Synonym for ′--log-level debug′. Takes precedence over ′--log-level′",
	EnvVar: "BUILDKITE_JOBVARS_DEBUG",
}

var LogLevelFlag = cli.StringFlag{
	Name:   "log-level",
	Value:  "notice",
	Usage:  "Set the log level. Possible values are: \"debug\", \"notice\", \"info\", \"warn\", \"error\", \"fatal\"",
	EnvVar: "BUILDKITE_JOBVARS_LOG_LEVEL",
}

var LogFormatFlag = cli.StringFlag{
	Name:   "log-format",
	Value:  "text",
	Usage:  "The format to use for the logger output: text or json",
	EnvVar: "BUILDKITE_JOBVARS_LOG_FORMAT",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "BUILDKITE_JOBVARS_NO_COLOR",
}

var SeedFlag = cli.StringFlag{
	Name:   "seed",
	Usage:  "Path to a YAML or JSON file of variables, keyed by scope (org, repo, final)",
	EnvVar: "BUILDKITE_JOBVARS_SEED",
}

var OrgEnvFileFlag = cli.StringFlag{
	Name:   "org-env-file",
	Usage:  "Path to a dotenv file of non-secret variables for the org scope",
	EnvVar: "BUILDKITE_JOBVARS_ORG_ENV_FILE",
}

var RepoEnvFileFlag = cli.StringFlag{
	Name:   "repo-env-file",
	Usage:  "Path to a dotenv file of non-secret variables for the repo scope",
	EnvVar: "BUILDKITE_JOBVARS_REPO_ENV_FILE",
}

var FinalEnvFileFlag = cli.StringFlag{
	Name:   "final-env-file",
	Usage:  "Path to a dotenv file of non-secret variables for the final scope",
	EnvVar: "BUILDKITE_JOBVARS_FINAL_ENV_FILE",
}

var SecretEnvFileFlag = cli.StringFlag{
	Name:   "secret-env-file",
	Usage:  "Path to a dotenv file of secret variables for the final scope",
	EnvVar: "BUILDKITE_JOBVARS_SECRET_ENV_FILE",
}

var ScopeFlag = cli.StringFlag{
	Name:   "scope",
	Value:  "final",
	Usage:  "Which scope to read: org, repo or final",
	EnvVar: "BUILDKITE_JOBVARS_SCOPE",
}

// storeFlags are accepted by every command that reads a store.
var storeFlags = []cli.Flag{
	SeedFlag,
	OrgEnvFileFlag,
	RepoEnvFileFlag,
	FinalEnvFileFlag,
	SecretEnvFileFlag,

	// Global flags
	DebugFlag,
	LogLevelFlag,
	LogFormatFlag,
	NoColorFlag,
}

// withStoreFlags returns flags followed by storeFlags.
func withStoreFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, storeFlags...)
}

// setupLogger builds the logger for a command from the global flags. Logs go
// to the app's ErrWriter so that stdout only carries command output.
func setupLogger(c *cli.Context) (logger.Logger, error) {
	level, err := logger.LevelFromString(c.String("log-level"))
	if err != nil {
		return nil, err
	}
	if c.Bool("debug") {
		level = logger.DEBUG
	}

	var printer logger.Printer
	switch format := c.String("log-format"); format {
	case "text":
		tp := logger.NewTextPrinter(c.App.ErrWriter)
		if c.Bool("no-color") {
			tp.Colors = false
		}
		printer = tp

	case "json":
		printer = logger.NewJSONPrinter(c.App.ErrWriter)

	default:
		return nil, fmt.Errorf("invalid --log-format %q: must be text or json", format)
	}

	l := logger.NewConsoleLogger(printer, os.Exit)
	l.SetLevel(level)
	return l, nil
}

// loadStore builds a variable store from the seed flags. Every secret value
// is registered with the returned masker.
func loadStore(c *cli.Context, l logger.Logger) (*variables.Store, *redact.Masker, error) {
	seed := variables.Seed{}

	if path := c.String("seed"); path != "" {
		loaded, err := variables.LoadSeedFile(path)
		if err != nil {
			return nil, nil, err
		}
		seed = loaded
	}

	envFiles := []struct {
		flag   string
		scope  variables.Scope
		secret bool
	}{
		{"org-env-file", variables.Org, false},
		{"repo-env-file", variables.Repo, false},
		{"final-env-file", variables.Final, false},
		{"secret-env-file", variables.Final, true},
	}
	for _, f := range envFiles {
		path := c.String(f.flag)
		if path == "" {
			continue
		}
		if err := seed.AddEnvFile(f.scope, path, f.secret); err != nil {
			return nil, nil, fmt.Errorf("--%s: %w", f.flag, err)
		}
		l.WithFields(logger.StringField("file", path), logger.StringerField("scope", f.scope)).
			Debug("Loaded env file")
	}

	masker := redact.NewMasker(l)
	store := variables.NewStore(l, masker, seed)
	l.Debug("Registered %d secret values for redaction", masker.Len())
	return store, masker, nil
}

func scopeFromFlag(c *cli.Context) (variables.Scope, error) {
	scope, err := variables.ParseScope(c.String("scope"))
	if err != nil {
		return 0, fmt.Errorf("--scope: %w", err)
	}
	return scope, nil
}
