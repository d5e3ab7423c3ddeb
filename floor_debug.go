//go:build tinylog_debug && !tinylog_off && !tinylog_trace

package tinylog

const (
	CompiledOff  = false
	CompileFloor = DebugLevel
)
