package tinylog

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type testWriterFunc func([]byte) (int, error)

func (fn testWriterFunc) Write(p []byte) (int, error) {
	return fn(p)
}

func TestObservedWriterCountsConsoleLines(t *testing.T) {
	var out bytes.Buffer
	reported := 0
	w := NewObservedWriter(&out, func(WriteFailure) { reported++ })
	sink := NewConsoleSink(w, ConsoleOptions{NoColor: true})

	sink(NewRecord(InfoLevel, "one"))
	sink(NewRecord(WarnLevel, "two"))

	if got, want := out.String(), "[ INFO] one\n[ WARN] two\n"; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
	if reported != 0 {
		t.Fatalf("unexpected failure reports: %d", reported)
	}
	if got, want := w.Stats(), (ObservedWriterStats{Writes: 2}); got != want {
		t.Fatalf("unexpected stats: got %+v want %+v", got, want)
	}
}

func TestObservedWriterSurfacesSinkFailures(t *testing.T) {
	full := errors.New("disk full")
	var failures []WriteFailure
	w := NewObservedWriter(testWriterFunc(func([]byte) (int, error) {
		return 0, full
	}), func(f WriteFailure) {
		failures = append(failures, f)
	})
	sink := NewConsoleSink(w, ConsoleOptions{NoColor: true})

	sink(NewRecord(ErrorLevel, "lost"))
	sink(NewRecord(ErrorLevel, "also lost"))

	if len(failures) != 2 || !errors.Is(failures[0].Err, full) {
		t.Fatalf("expected two reported failures, got %+v", failures)
	}
	if got, want := failures[0].Dropped(), len("[ERROR] lost\n"); got != want {
		t.Fatalf("unexpected dropped bytes: got %d want %d", got, want)
	}
	stats := w.Stats()
	want := uint64(len("[ERROR] lost\n") + len("[ERROR] also lost\n"))
	if stats.Failures != 2 || stats.ShortWrites != 2 || stats.DroppedBytes != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterKeepsErrorOnFullWrite(t *testing.T) {
	closed := errors.New("pipe closed")
	var got WriteFailure
	w := NewObservedWriter(testWriterFunc(func(p []byte) (int, error) {
		return len(p), closed
	}), func(f WriteFailure) { got = f })
	sink := NewConsoleSink(w, ConsoleOptions{NoColor: true})

	sink(NewRecord(WarnLevel, "flushed"))

	if !errors.Is(got.Err, closed) || got.Dropped() != 0 {
		t.Fatalf("unexpected failure: %+v", got)
	}
	if stats := w.Stats(); stats.Failures != 1 || stats.ShortWrites != 0 || stats.DroppedBytes != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterTruncatedConsoleLine(t *testing.T) {
	var out bytes.Buffer
	var got WriteFailure
	w := NewObservedWriter(testWriterFunc(func(p []byte) (int, error) {
		return out.Write(p[:len(p)-1])
	}), func(f WriteFailure) { got = f })
	sink := NewConsoleSink(w, ConsoleOptions{NoColor: true})

	sink(NewRecord(InfoLevel, "cut"))

	if out.String() != "[ INFO] cut" {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if !errors.Is(got.Err, io.ErrShortWrite) || got.Dropped() != 1 {
		t.Fatalf("unexpected failure: %+v", got)
	}
	if stats := w.Stats(); stats.ShortWrites != 1 || stats.DroppedBytes != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestObservedWriterNilDestinationDiscards(t *testing.T) {
	w := NewObservedWriter(nil, func(f WriteFailure) {
		t.Fatalf("unexpected failure: %+v", f)
	})
	NewConsoleSink(w, ConsoleOptions{NoColor: true})(NewRecord(InfoLevel, "gone"))
	if got := w.Stats().Writes; got != 1 {
		t.Fatalf("unexpected write count: %d", got)
	}
}

func TestObservedWriterFdWithoutDescriptor(t *testing.T) {
	w := NewObservedWriter(&bytes.Buffer{}, nil)
	if got := w.Fd(); got != ^uintptr(0) {
		t.Fatalf("expected invalid descriptor, got %d", got)
	}
	if isTerminal(w) {
		t.Fatalf("buffer-backed writer reported as terminal")
	}
}
