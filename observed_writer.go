package tinylog

import (
	"io"
	"sync/atomic"
)

// WriteFailure is one formatted line that did not fully reach the
// destination behind an ObservedWriter.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// Dropped reports how many bytes of the line were lost.
func (f WriteFailure) Dropped() int {
	if f.Written >= f.Attempted {
		return 0
	}
	return f.Attempted - f.Written
}

// ObservedWriterStats is a snapshot of an ObservedWriter's counters.
type ObservedWriterStats struct {
	Writes       uint64
	Failures     uint64
	ShortWrites  uint64
	DroppedBytes uint64
}

// ObservedWriter sits between a sink and its destination. Sinks drop write
// errors, so lost log lines only become visible here.
type ObservedWriter struct {
	dst    io.Writer
	report func(WriteFailure)

	lines   atomic.Uint64
	failed  atomic.Uint64
	short   atomic.Uint64
	dropped atomic.Uint64
}

// NewObservedWriter returns a writer that forwards to dst and calls report
// for every line that fails. A nil dst discards. report may be nil and must
// not log through tinylog.
func NewObservedWriter(dst io.Writer, report func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{dst: dst, report: report}
}

func (w *ObservedWriter) Write(line []byte) (int, error) {
	if w == nil {
		return len(line), nil
	}
	w.lines.Add(1)
	n, err := w.dst.Write(line)
	if err == nil && n == len(line) {
		return n, nil
	}
	if n < len(line) {
		w.short.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	f := WriteFailure{Err: err, Written: n, Attempted: len(line)}
	w.failed.Add(1)
	w.dropped.Add(uint64(f.Dropped()))
	if w.report != nil {
		w.report(f)
	}
	return n, err
}

// Fd forwards the destination's descriptor so a console sink behind the
// wrapper still detects a terminal.
func (w *ObservedWriter) Fd() uintptr {
	if w != nil {
		if f, ok := w.dst.(fdWriter); ok {
			return f.Fd()
		}
	}
	return ^uintptr(0)
}

// Stats returns the counters accumulated so far.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	return ObservedWriterStats{
		Writes:       w.lines.Load(),
		Failures:     w.failed.Load(),
		ShortWrites:  w.short.Load(),
		DroppedBytes: w.dropped.Load(),
	}
}
