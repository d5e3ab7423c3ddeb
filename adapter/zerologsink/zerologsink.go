// Package zerologsink forwards tinylog records to a zerolog.Logger.
package zerologsink

import (
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"pkt.systems/tinylog"
)

// New returns a sink that writes every record to logger. Call-site metadata,
// when present, is added as "caller" and "module" fields.
func New(logger zerolog.Logger) tinylog.Sink {
	return func(rec tinylog.Record) {
		ev := logger.WithLevel(Level(rec.Level()))
		if ev == nil {
			return
		}
		if md, ok := rec.Metadata(); ok {
			ev = ev.Str(zerolog.CallerFieldName, filepath.Base(md.File)+":"+strconv.Itoa(md.Line)).
				Str("module", md.Module)
		}
		ev.Msg(rec.Message())
	}
}

// Level maps a tinylog level onto zerolog's.
func Level(level tinylog.Level) zerolog.Level {
	switch level {
	case tinylog.TraceLevel:
		return zerolog.TraceLevel
	case tinylog.DebugLevel:
		return zerolog.DebugLevel
	case tinylog.InfoLevel:
		return zerolog.InfoLevel
	case tinylog.WarnLevel:
		return zerolog.WarnLevel
	case tinylog.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
