// Package env provides utilities for dealing with environment variables.
//
// It is intended for internal use by jobvars only.
package env

import (
	"os"
	"runtime"
	"strings"

	"github.com/puzpuzpuz/xsync/v2"
)

// Environment is a map of environment variables, with the keys normalized
// for case-insensitive operating systems
type Environment struct {
	underlying *xsync.MapOf[string, string]
}

// NewWithLength returns an empty Environment sized for length variables.
func NewWithLength(length int) *Environment {
	return &Environment{underlying: xsync.NewMapOfPresized[string](length)}
}

// Split splits an environment variable (in the form "name=value") into the name
// and value substrings. If there is no '=', or the first '=' is at the start,
// it returns `"", "", false`.
func Split(l string) (name, value string, ok bool) {
	// Windows creates variables beginning with '=' in some circumstances;
	// they are dropped.
	// See https://github.com/golang/go/issues/49886.
	i := strings.IndexRune(l, '=')
	if i <= 0 {
		return "", "", false
	}
	return l[:i], l[i+1:], true
}

// FromSlice creates a new environment from a string slice of KEY=VALUE
func FromSlice(s []string) *Environment {
	env := NewWithLength(len(s))

	for _, l := range s {
		if k, v, ok := Split(l); ok {
			env.Set(k, v)
		}
	}

	return env
}

// Get returns a key from the environment
func (e *Environment) Get(key string) (string, bool) {
	return e.underlying.Load(normalizeKeyName(key))
}

// Set sets a key in the environment
func (e *Environment) Set(key string, value string) string {
	e.underlying.Store(normalizeKeyName(key), value)
	return value
}

// Length returns the length of the environment
func (e *Environment) Length() int {
	return e.underlying.Size()
}

// Lookuper is anything that environment variables can be looked up in.
// Both *Environment and the value returned by Process satisfy it.
type Lookuper interface {
	Get(key string) (string, bool)
}

type processEnvironment struct{}

func (processEnvironment) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Process returns a Lookuper that reads the live environment of the current
// process. Unlike FromSlice(os.Environ()) it does not copy anything.
func Process() Lookuper {
	return processEnvironment{}
}

// Environment variables on Windows are case-insensitive: PATH, Path and pATH
// all name the same variable, and os.Environ() returns them in their original
// casing. Users of env.Environment shouldn't need to care about this, so on
// Windows all keys going in and out of this API are upper-cased.
//
// Unix systems _are_ case sensitive when it comes to ENV, so we'll just leave
// that alone.
func normalizeKeyName(key string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(key)
	}
	return key
}
