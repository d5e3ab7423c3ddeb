package tinylog

// Per-level build constants. Guarding expensive argument construction with
// one of these lets the compiler drop the whole block when the level is
// compiled out:
//
//	if tinylog.DebugCompiled && tinylog.Enabled(tinylog.DebugLevel) {
//		tinylog.Debug("state %s", expensiveDump())
//	}
const (
	TraceCompiled = !CompiledOff && TraceLevel >= CompileFloor
	DebugCompiled = !CompiledOff && DebugLevel >= CompileFloor
	InfoCompiled  = !CompiledOff && InfoLevel >= CompileFloor
	WarnCompiled  = !CompiledOff && WarnLevel >= CompileFloor
	ErrorCompiled = !CompiledOff && ErrorLevel >= CompileFloor
)

// Compiled reports whether level survives the build-time floor.
func Compiled(level Level) bool {
	return !CompiledOff && level.Valid() && level >= CompileFloor
}
