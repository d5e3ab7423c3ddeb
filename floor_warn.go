//go:build tinylog_warn && !tinylog_off && !tinylog_trace && !tinylog_debug && !tinylog_info

package tinylog

const (
	CompiledOff  = false
	CompileFloor = WarnLevel
)
