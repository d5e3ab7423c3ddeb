// Package logrsink routes logr.Logger calls into tinylog, so libraries that
// accept a logr.Logger share the process-wide sink and level gates.
//
//	logger := logr.New(logrsink.New())
//	logger.V(1).Info("cache miss", "key", key)
//
// V(0) maps to info, V(1) to debug and anything higher to trace. Errors are
// dispatched at error level.
package logrsink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"pkt.systems/tinylog"
)

// LogSink implements logr.LogSink and logr.CallDepthLogSink.
type LogSink struct {
	name   string
	values []any
	depth  int
}

var (
	_ logr.LogSink          = (*LogSink)(nil)
	_ logr.CallDepthLogSink = (*LogSink)(nil)
)

// New returns a LogSink with no name and no values.
func New() *LogSink {
	return &LogSink{}
}

// Level maps a logr verbosity onto a tinylog level.
func Level(v int) tinylog.Level {
	switch {
	case v <= 0:
		return tinylog.InfoLevel
	case v == 1:
		return tinylog.DebugLevel
	default:
		return tinylog.TraceLevel
	}
}

func (s *LogSink) Init(info logr.RuntimeInfo) {
	s.depth += info.CallDepth
}

func (s *LogSink) Enabled(level int) bool {
	return tinylog.Enabled(Level(level))
}

func (s *LogSink) Info(level int, msg string, keysAndValues ...any) {
	s.dispatch(Level(level), msg, nil, keysAndValues)
}

func (s *LogSink) Error(err error, msg string, keysAndValues ...any) {
	s.dispatch(tinylog.ErrorLevel, msg, err, keysAndValues)
}

func (s *LogSink) WithValues(keysAndValues ...any) logr.LogSink {
	c := s.clone()
	c.values = append(c.values, keysAndValues...)
	return c
}

func (s *LogSink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name == "" {
		c.name = name
	} else {
		c.name += "/" + name
	}
	return c
}

func (s *LogSink) WithCallDepth(depth int) logr.LogSink {
	c := s.clone()
	c.depth += depth
	return c
}

func (s *LogSink) clone() *LogSink {
	c := *s
	c.values = append([]any(nil), s.values...)
	return &c
}

func (s *LogSink) dispatch(level tinylog.Level, msg string, err error, keysAndValues []any) {
	if !tinylog.Enabled(level) {
		return
	}
	rec := tinylog.NewRecord(level, "%v", line{
		name:   s.name,
		msg:    msg,
		err:    err,
		values: s.values,
		kvs:    keysAndValues,
	})
	if tinylog.CapturingMetadata() {
		// Skip 0 is this frame. Above it sit Info or Error, then the
		// depth frames logr adds before the user's call.
		if md, ok := tinylog.CallerMetadata(s.depth + 2); ok {
			rec = rec.WithMetadata(md)
		}
	}
	tinylog.Dispatch(rec)
}

// line renders a logr call as "name: msg key=value ..." when the sink asks
// for the message.
type line struct {
	name   string
	msg    string
	err    error
	values []any
	kvs    []any
}

func (l line) String() string {
	var b strings.Builder
	if l.name != "" {
		b.WriteString(l.name)
		b.WriteString(": ")
	}
	b.WriteString(l.msg)
	if l.err != nil {
		b.WriteString(" error=")
		writeValue(&b, l.err.Error())
	}
	writePairs(&b, l.values)
	writePairs(&b, l.kvs)
	return b.String()
}

func writePairs(b *strings.Builder, kvs []any) {
	for i := 0; i < len(kvs); i += 2 {
		b.WriteByte(' ')
		if key, ok := kvs[i].(string); ok {
			b.WriteString(key)
		} else {
			fmt.Fprint(b, kvs[i])
		}
		b.WriteByte('=')
		if i+1 < len(kvs) {
			writeValue(b, kvs[i+1])
		} else {
			b.WriteString("<missing>")
		}
	}
}

func writeValue(b *strings.Builder, v any) {
	switch x := v.(type) {
	case string:
		if needsQuote(x) {
			b.WriteString(strconv.Quote(x))
		} else {
			b.WriteString(x)
		}
	case error:
		writeValue(b, x.Error())
	case fmt.Stringer:
		writeValue(b, x.String())
	default:
		fmt.Fprint(b, v)
	}
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r >= 0x7f {
			return true
		}
	}
	return false
}
