//go:build tinylog_direct

package linkconsole_test

import (
	"pkt.systems/tinylog"
	_ "pkt.systems/tinylog/linkconsole"
)

func Example() {
	tinylog.Info("linked %s", "sink")
	tinylog.Log(tinylog.ErrorLevel, "still linked")
	// Output:
	// [ INFO] linked sink
	// [ERROR] still linked
}
