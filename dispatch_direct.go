//go:build tinylog_direct

package tinylog

import _ "unsafe" // for go:linkname

// linkedSink has no body here. The program provides it at link time with a
// push directive in any package it links:
//
//	//go:linkname logSink pkt.systems/tinylog.linkedSink
//	func logSink(rec tinylog.Record) { ... }
//
// A build without that definition fails in the linker with an undefined
// symbol, never at run time. Importing pkt.systems/tinylog/linkconsole
// supplies a definition that forwards to ConsoleSink.
//
//go:linkname linkedSink pkt.systems/tinylog.linkedSink
func linkedSink(rec Record)

func emit(rec Record) {
	if extensionBuilt {
		emitExtension(&rec)
	}
	linkedSink(rec)
}
