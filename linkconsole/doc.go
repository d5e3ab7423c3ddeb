// Package linkconsole supplies the link-time sink for programs built with
// the tinylog_direct tag. A blank import is enough:
//
//	import _ "pkt.systems/tinylog/linkconsole"
//
// Every record that passes the level gates is written by
// tinylog.ConsoleSink. Without the tag the package is empty.
package linkconsole
