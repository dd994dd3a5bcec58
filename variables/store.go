// Package variables provides the scoped variable store used while running a
// job.
//
// A Store holds named string values in three independent scopes: Org, Repo
// and Final. Names are case-insensitive, each variable may be marked secret,
// and reads never fail: a value that is missing, or that does not parse as
// the requested type, is reported as absent.
package variables

import (
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/buildkite/jobvars/internal/redact"
	"github.com/buildkite/jobvars/logger"
	"github.com/puzpuzpuz/xsync/v2"
)

// Registrar is told about secret values so they can be scrubbed from output.
type Registrar interface {
	Register(value string)
}

// Seed is the per-scope initial content of a Store.
type Seed map[Scope]map[string]Value

// Store is a goroutine-safe set of variables partitioned by Scope.
type Store struct {
	logger logger.Logger
	scopes [numScopes]scopeTable
}

type scopeTable struct {
	// mu serialises writes. Reads go straight to vars.
	mu   sync.Mutex
	vars *xsync.MapOf[string, Variable]
}

// NewStore returns a Store seeded from seed.
//
// Seeded entries whose name is empty or whitespace are dropped. Within a
// scope, entries are stored in byte-wise order of their names, so when two
// names differ only in case the one sorting last wins ("token" over "TOKEN").
//
// Every secret value is passed to reg before NewStore returns, and before the
// variable holding it becomes readable. reg may be nil if the caller has
// already registered the secrets elsewhere.
func NewStore(l logger.Logger, reg Registrar, seed Seed) *Store {
	if l == nil {
		l = logger.Discard
	}

	s := &Store{logger: l}
	for i := range s.scopes {
		s.scopes[i].vars = xsync.NewMapOf[Variable]()
	}

	for scope, vars := range seed {
		if !scope.Valid() {
			l.Warn("Ignoring %d seeded variables in %v", len(vars), scope)
			continue
		}

		dropped := 0
		t := &s.scopes[scope]
		for _, name := range slices.Sorted(maps.Keys(vars)) {
			val := vars[name]
			v, err := NewVariable(name, val.Value, val.Secret)
			if err != nil {
				dropped++
				continue
			}
			if v.secret && reg != nil {
				reg.Register(v.value)
			}
			t.vars.Store(foldName(name), v)
		}

		if dropped > 0 {
			l.WithFields(logger.StringerField("scope", scope), logger.IntField("dropped", dropped)).
				Info("Removed %d variables with empty variable name from %s scope", dropped, scope)
			variablesDropped.WithLabelValues(scope.String()).Add(float64(dropped))
		}
	}

	return s
}

// lookup is the one primitive every read goes through. A nil Store has no
// variables.
func (s *Store) lookup(name string, scope Scope) (Variable, bool) {
	if s == nil || !scope.Valid() {
		return Variable{}, false
	}

	v, ok := s.scopes[scope].vars.Load(foldName(name))
	if !ok {
		s.logger.Debug("Get %q (not found)", name)
		return Variable{}, false
	}

	if v.secret {
		s.logger.Debug("Get %q: %q", name, redact.Redacted)
	} else {
		s.logger.Debug("Get %q: %q", name, v.value)
	}
	return v, true
}

// Get returns the value of the named variable in scope.
func (s *Store) Get(name string, scope Scope) (string, bool) {
	v, ok := s.lookup(name, scope)
	return v.value, ok
}

// TryGetValue is Get with the results the other way around, for callers
// that read better as
//
//	if found, val := s.TryGetValue(name, scope); found { ... }
func (s *Store) TryGetValue(name string, scope Scope) (found bool, value string) {
	v, ok := s.lookup(name, scope)
	return ok, v.value
}

// Set creates or replaces the named variable in scope. Variables written with
// Set are never secret.
func (s *Store) Set(name, value string, scope Scope) error {
	v, err := NewVariable(name, value, false)
	if err != nil {
		return err
	}
	if !scope.Valid() {
		return ErrUnknownScope
	}

	t := &s.scopes[scope]
	t.mu.Lock()
	t.vars.Store(foldName(name), v)
	t.mu.Unlock()

	variablesSet.WithLabelValues(scope.String()).Inc()
	return nil
}

// AllVariables returns a snapshot of every variable in every scope. The order
// is unspecified.
func (s *Store) AllVariables() []Variable {
	for i := range s.scopes {
		s.scopes[i].mu.Lock()
	}
	defer func() {
		for i := len(s.scopes) - 1; i >= 0; i-- {
			s.scopes[i].mu.Unlock()
		}
	}()

	n := 0
	for i := range s.scopes {
		n += s.scopes[i].vars.Size()
	}

	out := make([]Variable, 0, n)
	for i := range s.scopes {
		s.scopes[i].vars.Range(func(_ string, v Variable) bool {
			out = append(out, v)
			return true
		})
	}
	return out
}

// Variables returns a snapshot of the variables in scope. The order is
// unspecified.
func (s *Store) Variables(scope Scope) []Variable {
	if !scope.Valid() {
		return nil
	}

	t := &s.scopes[scope]
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Variable, 0, t.vars.Size())
	t.vars.Range(func(_ string, v Variable) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Len returns the number of variables in scope.
func (s *Store) Len(scope Scope) int {
	if !scope.Valid() {
		return 0
	}
	return s.scopes[scope].vars.Size()
}

// BuildNumber returns the build number of the job.
func (s *Store) BuildNumber() (string, bool) {
	return s.Get(BuildNumber, Final)
}

// StepDebug reports whether step debug logging was requested.
func (s *Store) StepDebug() (bool, bool) {
	return s.GetBoolean(StepDebug, Final)
}

// PhaseDisplayName returns the display name of the current phase.
func (s *Store) PhaseDisplayName() (string, bool) {
	return s.Get(SystemPhaseDisplayName, Final)
}

// RetainDefaultEncoding reports whether the console's default output encoding
// should be left alone. It is only ever changed on Windows.
func (s *Store) RetainDefaultEncoding() bool {
	return runtime.GOOS != "windows"
}
