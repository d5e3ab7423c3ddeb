package tinylog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// FileOutput appends rendered records to a file. It can act as the sink or,
// through Extension, as a side channel next to another sink.
type FileOutput struct {
	file     *os.File
	console  *console
	once     sync.Once
	closeErr error
}

// OpenFile opens path for appending, creating it if needed. Colour is never
// emitted to files; opts.Timestamp defaults to what the caller sets.
func OpenFile(path string, opts ConsoleOptions) (*FileOutput, error) {
	file, err := openLogOutputFile(path)
	if err != nil {
		return nil, err
	}
	opts.NoColor = true
	opts.ForceColor = false
	return &FileOutput{file: file, console: newConsole(file, opts)}, nil
}

// Sink returns a sink writing to the file.
func (f *FileOutput) Sink() Sink {
	return func(rec Record) {
		f.console.write(&rec)
	}
}

// Extension returns an extension writing to the file, for use next to a
// console or adapter sink.
func (f *FileOutput) Extension() Extension {
	return f.console.write
}

// Name returns the path the file was opened with.
func (f *FileOutput) Name() string {
	return f.file.Name()
}

// Close closes the file once. Records dispatched afterwards are dropped by
// the failing write.
func (f *FileOutput) Close() error {
	f.once.Do(func() {
		f.closeErr = f.file.Close()
	})
	return f.closeErr
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}

// teeWriter copies every line to each writer in order and stops at the first
// failure.
type teeWriter struct {
	writers []io.Writer
}

func newTeeWriter(writers ...io.Writer) io.Writer {
	return &teeWriter{writers: writers}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	for _, w := range t.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
