//go:build !tinylog_off && (tinylog_trace || !(tinylog_debug || tinylog_info || tinylog_warn || tinylog_error))

package tinylog

const (
	// CompiledOff reports whether every level was compiled out.
	CompiledOff = false
	// CompileFloor is the least urgent level compiled into this build.
	CompileFloor = TraceLevel
)
