package variables

import (
	"errors"
	"strings"

	"github.com/buildkite/jobvars/internal/redact"
)

// ErrEmptyName is returned when a variable name is empty or consists only of
// whitespace.
var ErrEmptyName = errors.New("variable name cannot be empty, or composed of only whitespace characters")

// Variable is an immutable named value.
type Variable struct {
	name   string
	value  string
	secret bool
}

// NewVariable validates name and returns a Variable.
func NewVariable(name, value string, secret bool) (Variable, error) {
	if blank(name) {
		return Variable{}, ErrEmptyName
	}
	return Variable{name: name, value: value, secret: secret}, nil
}

// Name returns the name as it was given, with its original casing.
func (v Variable) Name() string { return v.name }

// Value returns the value. It is never nil; an unset value is "".
func (v Variable) Value() string { return v.value }

// Secret reports whether the value is sensitive.
func (v Variable) Secret() bool { return v.secret }

func (v Variable) String() string {
	if v.secret {
		return v.name + "=" + redact.Redacted
	}
	return v.name + "=" + v.value
}

// Value is a single bulk seed entry.
type Value struct {
	Value  string `yaml:"value" json:"value"`
	Secret bool   `yaml:"secret" json:"secret"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// foldName is the key names are stored under, so lookups are
// case-insensitive.
func foldName(name string) string {
	return strings.ToLower(name)
}
