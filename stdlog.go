package tinylog

import (
	"bytes"
	"log"
	"strings"
)

// StdLogger returns a *log.Logger whose output is dispatched through tinylog
// at level, one record per line.
func StdLogger(level Level) *log.Logger {
	return log.New(levelPinnedWriter{level: level}, "", 0)
}

// StdLoggerClassified returns a *log.Logger that derives each line's level
// from a leading "[level]" tag or a level word prefix such as "warn:".
// Unclassified lines are dispatched at InfoLevel.
func StdLoggerClassified() *log.Logger {
	return log.New(classifyingWriter{}, "", 0)
}

func classifyLineLevel(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexRune(trimmed, ']'); end > 1 {
			if lvl, ok := ParseLevel(trimmed[1:end]); ok {
				return lvl, strings.TrimSpace(trimmed[end+1:])
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	trimTail := func(prefixLen int) string {
		tail := strings.TrimSpace(trimmed[prefixLen:])
		tail = strings.TrimLeft(tail, ":- ")
		return strings.TrimSpace(tail)
	}
	for _, lvl := range [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		name := lvl.String()
		if lvl == WarnLevel && hasWordPrefix(lowered, "warning") {
			return lvl, trimTail(len("warning"))
		}
		if hasWordPrefix(lowered, name) {
			return lvl, trimTail(len(name))
		}
	}
	return InfoLevel, trimmed
}

// hasWordPrefix reports whether s starts with word followed by a non-letter
// or the end of s, so "errors" does not classify as "error".
func hasWordPrefix(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	c := s[len(word)]
	return c < 'a' || c > 'z'
}

// forEachLine calls fn for every non-blank line in p.
func forEachLine(p []byte, fn func(string)) {
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		fn(string(line))
	}
}

type classifyingWriter struct{}

func (classifyingWriter) Write(p []byte) (int, error) {
	forEachLine(p, func(line string) {
		level, msg := classifyLineLevel(line)
		if levels.enabled(level) {
			emit(NewRecord(level, msg))
		}
	})
	return len(p), nil
}

type levelPinnedWriter struct {
	level Level
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if !levels.enabled(w.level) {
		return len(p), nil
	}
	forEachLine(p, func(line string) {
		emit(NewRecord(w.level, line))
	})
	return len(p), nil
}
