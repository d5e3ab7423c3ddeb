//go:build tinylog_info && !tinylog_off && !tinylog_trace && !tinylog_debug

package tinylog

const (
	CompiledOff  = false
	CompileFloor = InfoLevel
)
