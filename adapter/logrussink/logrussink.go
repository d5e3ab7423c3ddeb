// Package logrussink forwards tinylog records to a logrus.FieldLogger.
package logrussink

import (
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"pkt.systems/tinylog"
)

// New returns a sink writing to logger. A nil logger uses
// logrus.StandardLogger().
func New(logger *logrus.Logger) tinylog.Sink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return func(rec tinylog.Record) {
		level := Level(rec.Level())
		if !logger.IsLevelEnabled(level) {
			return
		}
		var entry *logrus.Entry
		if md, ok := rec.Metadata(); ok {
			entry = logger.WithFields(logrus.Fields{
				"caller": filepath.Base(md.File) + ":" + strconv.Itoa(md.Line),
				"module": md.Module,
			})
		} else {
			entry = logrus.NewEntry(logger)
		}
		entry.Log(level, rec.Message())
	}
}

// Level maps a tinylog level onto logrus'.
func Level(level tinylog.Level) logrus.Level {
	switch level {
	case tinylog.TraceLevel:
		return logrus.TraceLevel
	case tinylog.DebugLevel:
		return logrus.DebugLevel
	case tinylog.InfoLevel:
		return logrus.InfoLevel
	case tinylog.WarnLevel:
		return logrus.WarnLevel
	case tinylog.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
