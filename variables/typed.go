package variables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GetBoolean returns the named variable in scope as a bool. Only "true" and
// "false" (in any case, ignoring surrounding whitespace) are accepted.
func (s *Store) GetBoolean(name string, scope Scope) (bool, bool) {
	v, ok := s.Get(name, scope)
	if !ok {
		return false, false
	}
	return parseBool(v)
}

// GetInt returns the named Final variable as a 32-bit signed integer.
func (s *Store) GetInt(name string) (int, bool) {
	v, ok := s.Get(name, Final)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// GetLong returns the named Final variable as a 64-bit signed integer.
func (s *Store) GetLong(name string) (int64, bool) {
	v, ok := s.Get(name, Final)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetGuid returns the named Final variable as a UUID.
func (s *Store) GetGuid(name string) (uuid.UUID, bool) {
	v, ok := s.Get(name, Final)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetEnum returns the member of members whose String() matches the named
// Final variable, ignoring case.
//
//	mode, ok := variables.GetEnum(store, "checkout.mode", CheckoutFull, CheckoutShallow)
func GetEnum[T fmt.Stringer](s *Store, name string, members ...T) (T, bool) {
	var zero T

	v, ok := s.Get(name, Final)
	if !ok {
		return zero, false
	}

	v = strings.TrimSpace(v)
	for _, m := range members {
		if strings.EqualFold(v, m.String()) {
			return m, true
		}
	}
	return zero, false
}

func parseBool(s string) (bool, bool) {
	switch s = strings.TrimSpace(s); {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}
