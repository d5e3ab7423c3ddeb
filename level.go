package tinylog

import (
	"os"
	"strings"
)

// Level defines log levels. Levels are ordered by increasing urgency and the
// order is never reinterpreted.
type Level uint8

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
)

const levelCount = int(ErrorLevel) + 1

var (
	levelNames  = [levelCount]string{"trace", "debug", "info", "warn", "error"}
	levelLabels = [levelCount]string{"TRACE", "DEBUG", " INFO", " WARN", "ERROR"}
)

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return int(l) < levelCount
}

// String returns the canonical lower-case name of the level.
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Label returns the fixed-width, upper-case label used by the console sink.
func (l Level) Label() string {
	if !l.Valid() {
		return "?????"
	}
	return levelLabels[l]
}

// LevelFromUint8 converts a raw value into a Level.
func LevelFromUint8(v uint8) (Level, bool) {
	l := Level(v)
	if !l.Valid() {
		return TraceLevel, false
	}
	return l, true
}

// ParseLevel converts a textual level into a Level value. It accepts "trace",
// "debug", "info", "warn", "warning" and "error" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return TraceLevel, false
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return TraceLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return TraceLevel, false
	}
	return ParseLevel(value)
}
