//go:build !tinylog_direct && tinylog_no_default

package tinylog

var defaultSink *sinkHandle
