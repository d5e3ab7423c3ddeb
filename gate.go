package tinylog

import "sync/atomic"

// gate combines the build-time floor with the runtime floor. The runtime
// floor only ever narrows what the build allows.
type gate struct {
	off        bool
	floor      Level
	adjustable bool
	runtime    atomic.Uint32
}

var levels = newGate(CompiledOff, CompileFloor, runtimeFloorBuilt)

func newGate(off bool, floor Level, adjustable bool) *gate {
	g := &gate{off: off, floor: floor, adjustable: adjustable}
	g.runtime.Store(uint32(TraceLevel))
	return g
}

func (g *gate) enabled(level Level) bool {
	if g.off || !level.Valid() || level < g.floor {
		return false
	}
	if !g.adjustable {
		return true
	}
	return uint32(level) >= g.runtime.Load()
}

func (g *gate) effectiveFloor() (Level, bool) {
	if g.off {
		return ErrorLevel, false
	}
	if !g.adjustable {
		return g.floor, true
	}
	if rt := Level(g.runtime.Load()); rt > g.floor {
		return rt, true
	}
	return g.floor, true
}

func (g *gate) setMin(level Level) {
	if !g.adjustable || !level.Valid() {
		return
	}
	g.runtime.Store(uint32(level))
}

// Enabled reports whether a record at level would currently be dispatched.
// Callers can use it to skip building expensive arguments.
func Enabled(level Level) bool {
	return levels.enabled(level)
}

// SetMinLevel sets the runtime floor. Levels excluded at build time stay
// excluded. In builds tagged tinylog_static_level it has no effect.
func SetMinLevel(level Level) {
	levels.setMin(level)
}

// MinLevel returns the effective floor, the stricter of the build-time and
// runtime floors. The boolean is false when logging was compiled out
// entirely.
func MinLevel() (Level, bool) {
	return levels.effectiveFloor()
}
