package tinylog

// Sink is the terminal consumer of a record. The core never inspects what a
// sink does with the record or whether it failed.
type Sink func(Record)

// Extension observes a record before the sink receives it. It must treat
// the record as read-only and, like a sink, reports nothing back.
type Extension func(*Record)

// Dispatch hands rec to the active extension and sink if its level is
// enabled. Without a sink it does nothing. Panics raised by the extension or
// the sink are not recovered.
func Dispatch(rec Record) {
	if !levels.enabled(rec.level) {
		return
	}
	emit(rec)
}

// Log emits a record at level. The template is formatted with fmt verbs, and
// only when the record passes the gate and the sink asks for the message.
func Log(level Level, format string, args ...any) {
	if !Compiled(level) || !levels.enabled(level) {
		return
	}
	emit(callRecord(level, format, args))
}

// Trace emits a record at TraceLevel.
func Trace(format string, args ...any) {
	if !TraceCompiled || !levels.enabled(TraceLevel) {
		return
	}
	emit(callRecord(TraceLevel, format, args))
}

// Debug emits a record at DebugLevel.
func Debug(format string, args ...any) {
	if !DebugCompiled || !levels.enabled(DebugLevel) {
		return
	}
	emit(callRecord(DebugLevel, format, args))
}

// Info emits a record at InfoLevel.
func Info(format string, args ...any) {
	if !InfoCompiled || !levels.enabled(InfoLevel) {
		return
	}
	emit(callRecord(InfoLevel, format, args))
}

// Warn emits a record at WarnLevel.
func Warn(format string, args ...any) {
	if !WarnCompiled || !levels.enabled(WarnLevel) {
		return
	}
	emit(callRecord(WarnLevel, format, args))
}

// Error emits a record at ErrorLevel.
func Error(format string, args ...any) {
	if !ErrorCompiled || !levels.enabled(ErrorLevel) {
		return
	}
	emit(callRecord(ErrorLevel, format, args))
}

// callRecord must be called directly from an exported emission helper so the
// metadata skip lands on the helper's caller.
//
//go:noinline
func callRecord(level Level, format string, args []any) Record {
	rec := Record{level: level, format: format, args: args}
	if metadataBuilt && captureMetadata.Load() {
		rec.metadata, rec.hasMeta = callerMetadata(2)
	}
	return rec
}
