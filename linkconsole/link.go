//go:build tinylog_direct

package linkconsole

import (
	_ "unsafe" // for go:linkname

	"pkt.systems/tinylog"
)

//go:linkname linkedSink pkt.systems/tinylog.linkedSink
func linkedSink(rec tinylog.Record) {
	tinylog.ConsoleSink(rec)
}
