//go:build tinylog_direct && tinylog_direct_extension

package tinylog

import _ "unsafe" // for go:linkname

// linkedExtension is resolved by the linker the same way as linkedSink:
//
//	//go:linkname logExtension pkt.systems/tinylog.linkedExtension
//	func logExtension(rec *tinylog.Record) { ... }
//
//go:linkname linkedExtension pkt.systems/tinylog.linkedExtension
func linkedExtension(rec *Record)

func emitExtension(rec *Record) {
	linkedExtension(rec)
}
