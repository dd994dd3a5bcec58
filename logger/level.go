package logger

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	NOTICE
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = []string{
	"DEBUG",
	"NOTICE",
	"INFO",
	"WARN",
	"ERROR",
	"FATAL",
}

// String returns the string representation of a logging level.
func (p Level) String() string {
	if p < DEBUG || int(p) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(p))
	}
	return levelNames[p]
}

// LevelFromString converts a level name (e.g. "warn") to a Level.
func LevelFromString(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "notice":
		return NOTICE, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	}
	return -1, fmt.Errorf("invalid log level %q: must be one of debug, notice, info, warn, error or fatal", s)
}
