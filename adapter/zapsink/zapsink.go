// Package zapsink forwards tinylog records to a *zap.Logger.
//
// zap has no trace level; trace records are written at debug with a
// "trace" field set to true so they can still be told apart.
package zapsink

import (
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkt.systems/tinylog"
)

// Option customizes the sink returned by New.
type Option func(*config)

type config struct {
	callerKey string
	moduleKey string
}

// WithMetadataKeys renames the fields carrying call-site metadata. An empty
// key drops that field. Defaults are "caller" and "module".
func WithMetadataKeys(caller, module string) Option {
	return func(cfg *config) {
		cfg.callerKey = caller
		cfg.moduleKey = module
	}
}

// New returns a sink that writes every record to logger. The message is
// only formatted when the logger's core accepts the mapped level.
func New(logger *zap.Logger, opts ...Option) tinylog.Sink {
	cfg := config{callerKey: "caller", moduleKey: "module"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(rec tinylog.Record) {
		level := Level(rec.Level())
		if !logger.Core().Enabled(level) {
			return
		}
		ce := logger.Check(level, rec.Message())
		if ce == nil {
			return
		}
		var fields []zap.Field
		if rec.Level() == tinylog.TraceLevel {
			fields = append(fields, zap.Bool("trace", true))
		}
		if md, ok := rec.Metadata(); ok {
			if cfg.callerKey != "" {
				fields = append(fields, zap.String(cfg.callerKey, filepath.Base(md.File)+":"+strconv.Itoa(md.Line)))
			}
			if cfg.moduleKey != "" {
				fields = append(fields, zap.String(cfg.moduleKey, md.Module))
			}
		}
		ce.Write(fields...)
	}
}

// Level maps a tinylog level onto zap's.
func Level(level tinylog.Level) zapcore.Level {
	switch level {
	case tinylog.TraceLevel, tinylog.DebugLevel:
		return zapcore.DebugLevel
	case tinylog.InfoLevel:
		return zapcore.InfoLevel
	case tinylog.WarnLevel:
		return zapcore.WarnLevel
	case tinylog.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
