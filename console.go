package tinylog

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"pkt.systems/tinylog/ansi"
)

// ConsoleOptions controls how the console sink renders records.
type ConsoleOptions struct {
	// Timestamp prefixes every line with the time the record was written.
	Timestamp bool

	// TimeFormat overrides the timestamp layout. Defaults to time.RFC3339.
	TimeFormat string

	// UTC forces timestamps to be rendered in UTC.
	UTC bool

	// Caller appends the call-site file and line when the record carries
	// metadata.
	Caller bool

	// NoColor forces colour escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// destination is not a TTY.
	ForceColor bool

	// Palette overrides the ANSI palette. When nil the ansi package default is
	// used.
	Palette *ansi.Palette
}

const consoleMaxRetained = 64 << 10

type console struct {
	w       io.Writer
	opts    ConsoleOptions
	clock   timeCache
	color   bool
	palette ansi.Palette

	mu  sync.Mutex
	buf []byte
}

func newConsole(w io.Writer, opts ConsoleOptions) *console {
	if w == nil {
		w = io.Discard
	}
	layout := opts.TimeFormat
	if layout == "" {
		layout = time.RFC3339
	}
	return &console{
		w:       w,
		opts:    opts,
		clock:   newTimeCache(layout),
		color:   !opts.NoColor && (opts.ForceColor || isTerminal(w)),
		palette: ansi.Resolve(opts.Palette),
		buf:     make([]byte, 0, 256),
	}
}

// NewConsoleSink returns a sink that writes one line per record to w:
//
//	[ INFO] listening on :8080
//
// Lines are written with a single Write call; concurrent records are
// serialised. Write errors are dropped, wrap w in an ObservedWriter to count
// them.
func NewConsoleSink(w io.Writer, opts ConsoleOptions) Sink {
	c := newConsole(w, opts)
	return func(rec Record) {
		c.write(&rec)
	}
}

var stdoutConsole = sync.OnceValue(func() *console {
	return newConsole(os.Stdout, ConsoleOptions{})
})

// ConsoleSink writes rec to standard output with default options. It is the
// sink installed when nothing else was registered.
func ConsoleSink(rec Record) {
	stdoutConsole().write(&rec)
}

func (c *console) write(rec *Record) {
	var now time.Time
	if c.opts.Timestamp {
		now = time.Now()
		if c.opts.UTC {
			now = now.UTC()
		}
	}
	c.mu.Lock()
	c.buf = c.appendLine(c.buf[:0], rec, now)
	_, _ = c.w.Write(c.buf)
	if cap(c.buf) > consoleMaxRetained {
		c.buf = make([]byte, 0, 256)
	}
	c.mu.Unlock()
}

func (c *console) appendLine(buf []byte, rec *Record, now time.Time) []byte {
	if c.opts.Timestamp {
		if c.color {
			buf = append(buf, c.palette.Timestamp...)
			buf = c.clock.appendTime(buf, now)
			buf = append(buf, ansi.Reset...)
		} else {
			buf = c.clock.appendTime(buf, now)
		}
		buf = append(buf, ' ')
	}
	buf = append(buf, '[')
	if c.color {
		buf = append(buf, c.palette.Level(int(rec.level))...)
		buf = append(buf, rec.level.Label()...)
		buf = append(buf, ansi.Reset...)
	} else {
		buf = append(buf, rec.level.Label()...)
	}
	buf = append(buf, "] "...)
	if c.color {
		buf = append(buf, c.palette.Message...)
		buf = rec.AppendMessage(buf)
		buf = append(buf, ansi.Reset...)
	} else {
		buf = rec.AppendMessage(buf)
	}
	if c.opts.Caller && rec.hasMeta {
		buf = append(buf, ' ')
		if c.color {
			buf = append(buf, c.palette.Caller...)
		}
		buf = append(buf, "caller="...)
		buf = append(buf, filepath.Base(rec.metadata.File)...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(rec.metadata.Line), 10)
		if c.color {
			buf = append(buf, ansi.Reset...)
		}
	}
	return append(buf, '\n')
}
