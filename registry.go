//go:build !tinylog_direct

package tinylog

import "sync/atomic"

// sinkHandle and extensionHandle are immutable once published. A handle with
// a nil function is a deliberate "nothing registered" marker.
type sinkHandle struct {
	fn Sink
}

type extensionHandle struct {
	fn Extension
}

// registry holds the active sink and extension. Every access is a single
// atomic load, store or compare-and-swap; nothing here blocks.
type registry struct {
	sink      atomic.Pointer[sinkHandle]
	extension atomic.Pointer[extensionHandle]
	fallback  *sinkHandle
}

var slots = newRegistry(defaultSink)

func newRegistry(fallback *sinkHandle) *registry {
	return &registry{fallback: fallback}
}

func (r *registry) register(fn Sink) {
	r.sink.Store(&sinkHandle{fn: fn})
}

// sinkOrDefault returns the registered sink, installing the fallback on
// first use. Competing first-touch callers all install the same handle, and
// an explicit registration is never replaced because the fallback is only
// swapped in over an empty slot.
func (r *registry) sinkOrDefault() *sinkHandle {
	if h := r.sink.Load(); h != nil {
		return h
	}
	if r.fallback == nil {
		return nil
	}
	r.sink.CompareAndSwap(nil, r.fallback)
	return r.sink.Load()
}

func (r *registry) registerExtension(fn Extension) {
	r.extension.Store(&extensionHandle{fn: fn})
}

func (r *registry) currentExtension() Extension {
	if h := r.extension.Load(); h != nil {
		return h.fn
	}
	return nil
}

// dispatch runs the extension and sink registered in r. The gate has
// already been consulted.
func (r *registry) dispatch(rec Record) {
	if extensionBuilt {
		if ext := r.currentExtension(); ext != nil {
			ext(&rec)
		}
	}
	if h := r.sinkOrDefault(); h != nil && h.fn != nil {
		h.fn(rec)
	}
}

// SetLogger registers sink as the process-wide sink. The last call wins.
// Dispatches already in flight may still finish on the previous sink.
// Passing nil turns dispatch into a no-op; the built-in default is not
// reinstalled.
func SetLogger(sink Sink) {
	slots.register(sink)
}

// Logger returns the sink dispatch currently resolves to, installing the
// default console sink if nothing was registered. It returns nil when no
// sink is available.
func Logger() Sink {
	if h := slots.sinkOrDefault(); h != nil {
		return h.fn
	}
	return nil
}

func emit(rec Record) {
	slots.dispatch(rec)
}
