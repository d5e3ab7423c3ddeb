package tinylog

import (
	"runtime"
	"strings"
	"sync/atomic"
)

const unknownModule = "unknown"

var captureMetadata atomic.Bool

// SetCaptureMetadata turns call-site capture on or off for the emission
// helpers. Capture is off by default because it walks the stack on every
// enabled record. Builds tagged tinylog_no_metadata ignore it.
func SetCaptureMetadata(enabled bool) {
	captureMetadata.Store(enabled)
}

// CapturingMetadata reports whether emission helpers attach call-site
// metadata to records.
func CapturingMetadata() bool {
	return metadataBuilt && captureMetadata.Load()
}

// CallerMetadata describes the frame skip levels above the function that
// calls it; skip 0 is that function itself. Adapters that build their own
// records use it to attach metadata when CapturingMetadata reports true.
func CallerMetadata(skip int) (Metadata, bool) {
	return callerMetadata(skip + 1)
}

// callerMetadata describes the frame skip levels above its caller.
func callerMetadata(skip int) (Metadata, bool) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Metadata{}, false
	}
	return Metadata{Module: moduleForPC(pc), File: file, Line: line}, true
}

func moduleForPC(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownModule
	}
	return packagePath(fn.Name())
}

// packagePath strips the function and receiver from a fully qualified
// function name such as "example.com/a/b.(*T).Method".
func packagePath(name string) string {
	if name == "" {
		return unknownModule
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	slash := strings.LastIndex(name, "/")
	if dot := strings.Index(name[slash+1:], "."); dot >= 0 {
		name = name[:slash+1+dot]
	}
	// Dots in the last path element are escaped by the linker, as in
	// "gopkg.in/yaml%2ev3.Marshal".
	name = strings.ReplaceAll(name, "%2e", ".")
	if name == "" {
		return unknownModule
	}
	return name
}
