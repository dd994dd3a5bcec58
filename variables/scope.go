package variables

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScope is returned when a Scope value or scope name is not one of
// Org, Repo or Final.
var ErrUnknownScope = errors.New("unknown variable scope")

// Scope is the visibility partition a variable lives in.
type Scope int

const (
	// Org holds organization-level values.
	Org Scope = iota
	// Repo holds repository-level values.
	Repo
	// Final holds the merged, effective configuration for the job. Nearly
	// all typed reads use it.
	Final

	numScopes
)

var scopeNames = [numScopes]string{
	Org:   "org",
	Repo:  "repo",
	Final: "final",
}

// Scopes returns every scope in declaration order.
func Scopes() []Scope {
	return []Scope{Org, Repo, Final}
}

// Valid reports whether s is one of Org, Repo or Final.
func (s Scope) Valid() bool {
	return s >= Org && s < numScopes
}

func (s Scope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeNames[s]
}

// ParseScope converts a scope name ("org", "repo" or "final", in any case) to
// a Scope.
func ParseScope(name string) (Scope, error) {
	n := strings.TrimSpace(name)
	for s, sn := range scopeNames {
		if strings.EqualFold(n, sn) {
			return Scope(s), nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of org, repo or final", ErrUnknownScope, name)
}
