// Package redact collects secret values so they can be scrubbed from output.
package redact

import (
	"slices"
	"strings"

	"github.com/buildkite/jobvars/logger"
	"github.com/puzpuzpuz/xsync/v2"
)

// LengthMin is the shortest string length that will be considered a
// potential secret. e.g. if a secret variable is set to "none", this minimum
// length will prevent the word "none" from being redacted from useful output.
const LengthMin = 6

// Redacted is substituted for every registered value.
const Redacted = "[REDACTED]"

// Masker is a goroutine-safe set of secret values.
type Masker struct {
	logger logger.Logger
	values *xsync.MapOf[string, struct{}]
}

// NewMasker returns an empty Masker. Values that are too short to be
// registered are reported to l.
func NewMasker(l logger.Logger) *Masker {
	if l == nil {
		l = logger.Discard
	}
	return &Masker{
		logger: l,
		values: xsync.NewMapOf[struct{}](),
	}
}

// Register adds value to the set of values to redact. Empty values and values
// shorter than LengthMin are ignored.
func (m *Masker) Register(value string) {
	if value == "" {
		return
	}
	if len(value) < LengthMin {
		m.logger.Warn("A secret value is below the minimum length (%d bytes) and will not be redacted", LengthMin)
		return
	}
	m.values.Store(value, struct{}{})
}

// Len returns the number of registered values.
func (m *Masker) Len() int {
	return m.values.Size()
}

// Values returns the registered values, longest first.
func (m *Masker) Values() []string {
	vals := make([]string, 0, m.values.Size())
	m.values.Range(func(v string, _ struct{}) bool {
		vals = append(vals, v)
		return true
	})
	slices.SortFunc(vals, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return vals
}

// Redact replaces every occurrence of a registered value in s with Redacted.
// Longer values are tried first, so a value containing another is redacted
// as a whole.
func (m *Masker) Redact(s string) string {
	if s == "" {
		return s
	}
	vals := m.Values()
	if len(vals) == 0 {
		return s
	}

	oldnew := make([]string, 0, 2*len(vals))
	for _, v := range vals {
		oldnew = append(oldnew, v, Redacted)
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}
