//go:build tinylog_static_level

package tinylog

const runtimeFloorBuilt = false
