// Package tinylog is a small logging facade. Each call site decides, for the
// price of a constant check and one atomic load, whether a record is
// emitted, and hands enabled records to exactly one sink and an optional
// extension.
//
// # Filtering
//
// A record passes when its level clears two floors:
//
//   - the build-time floor, chosen with build tags (tinylog_debug,
//     tinylog_info, tinylog_warn, tinylog_error, or tinylog_off to compile
//     every level out). Without a tag every level is compiled in.
//   - the runtime floor, set with SetMinLevel. It only narrows the
//     build-time floor and can be compiled out with tinylog_static_level.
//
// The per-level constants TraceCompiled..ErrorCompiled let callers fold away
// expensive argument construction:
//
//	if tinylog.DebugCompiled && tinylog.Enabled(tinylog.DebugLevel) {
//		tinylog.Debug("cache state %v", cache.Dump())
//	}
//
// # Dispatch
//
// By default the sink and extension live in lock-free global slots.
// SetLogger and SetExtension replace them at any time; the last call wins.
// If no sink was registered the first dispatch installs ConsoleSink, which
// writes "[ INFO] message" lines to standard output. Builds tagged
// tinylog_no_default have no default and stay silent until a sink is set.
//
// Builds tagged tinylog_direct drop the slots and call a function the
// program provides at link time instead:
//
//	//go:linkname logSink pkt.systems/tinylog.linkedSink
//	func logSink(rec tinylog.Record) { ... }
//
// or, for console output, a blank import of pkt.systems/tinylog/linkconsole.
// A missing definition is a link error.
//
// # Usage
//
//	tinylog.SetMinLevel(tinylog.InfoLevel)
//	tinylog.Info("listening on %s", addr)
//	tinylog.Debug("not emitted")
//
// Sinks forwarding into zap, zerolog and logrus live under adapter/, as does
// a logr.LogSink that routes logr users into tinylog.
package tinylog
