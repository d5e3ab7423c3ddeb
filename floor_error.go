//go:build tinylog_error && !tinylog_off && !tinylog_trace && !tinylog_debug && !tinylog_info && !tinylog_warn

package tinylog

const (
	CompiledOff  = false
	CompileFloor = ErrorLevel
)
