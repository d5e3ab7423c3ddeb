//go:build !tinylog_direct && !tinylog_no_default

package tinylog

// defaultSink is the single handle every first-touch dispatch installs when
// no sink was registered.
var defaultSink = &sinkHandle{fn: ConsoleSink}
