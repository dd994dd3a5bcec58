// Package version provides the jobvars version strings.
package version

import (
	_ "embed"
	"strings"
)

// buildVersion can be overridden at compile time with:
//
//	go build -ldflags "-X github.com/buildkite/jobvars/version.buildVersion=abc" .

//go:embed VERSION
var baseVersion string
var buildVersion string

func Version() string {
	return strings.TrimSpace(baseVersion)
}

func BuildVersion() string {
	if buildVersion == "" {
		return "x"
	}
	return buildVersion
}

// FullVersion is Version and BuildVersion joined, as shown by --version.
func FullVersion() string {
	return Version() + "+" + BuildVersion()
}
