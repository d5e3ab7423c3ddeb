//go:build tinylog_direct && !tinylog_direct_extension

package tinylog

func emitExtension(*Record) {}
