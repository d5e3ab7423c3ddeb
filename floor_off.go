//go:build tinylog_off

package tinylog

// With tinylog_off no level passes the gate; CompileFloor is kept at the most
// urgent level so comparisons still fold to false.
const (
	CompiledOff  = true
	CompileFloor = ErrorLevel
)
