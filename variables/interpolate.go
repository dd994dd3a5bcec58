package variables

import "github.com/buildkite/interpolate"

// scopeEnv exposes one scope of a Store as an interpolate.Env.
type scopeEnv struct {
	store *Store
	scope Scope
}

func (e scopeEnv) Get(key string) (string, bool) {
	return e.store.Get(key, e.scope)
}

// Interpolate expands $NAME and ${NAME} references in str using the
// variables in scope. The usual shell forms ${NAME:-default}, ${NAME-default}
// and ${NAME?message} are understood, and unset variables expand to nothing.
//
// Only names made of letters, digits and underscores can be referenced.
func (s *Store) Interpolate(str string, scope Scope) (string, error) {
	if !scope.Valid() {
		return "", ErrUnknownScope
	}
	return interpolate.Interpolate(scopeEnv{store: s, scope: scope}, str)
}
