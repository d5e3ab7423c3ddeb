// Package ansi provides the ANSI escape sequences and palettes used by
// tinylog's console sink. A palette is copied into a sink when the sink is
// built, so SetPalette only affects sinks constructed afterwards.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
)

// Palette assigns an escape sequence to each element the console sink
// colours. Empty entries fall back to the current palette in SetPalette and
// to PaletteDefault in Resolve.
type Palette struct {
	Trace     string
	Debug     string
	Info      string
	Warn      string
	Error     string
	Timestamp string
	Caller    string
	Message   string
}

// PaletteDefault mirrors the classic 16-colour terminal scheme.
var PaletteDefault = Palette{
	Trace:     Blue,
	Debug:     Green,
	Info:      BrightGreen,
	Warn:      BrightYellow,
	Error:     BrightRed,
	Timestamp: Faint,
	Caller:    Cyan,
	Message:   Bold,
}

var (
	paletteMu sync.RWMutex
	current   = PaletteDefault
)

// SetPalette replaces the package default palette used by sinks that do not
// name one explicitly.
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteNord)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	current = merge(palette, current)
}

// Snapshot returns the current package default palette.
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}

// Resolve returns p with empty entries filled from the package default, or
// the package default itself when p is nil.
func Resolve(p *Palette) Palette {
	snap := Snapshot()
	if p == nil {
		return snap
	}
	return merge(*p, snap)
}

// Level returns the escape sequence for a level index (0 trace .. 4 error).
func (p Palette) Level(index int) string {
	switch index {
	case 0:
		return p.Trace
	case 1:
		return p.Debug
	case 2:
		return p.Info
	case 3:
		return p.Warn
	case 4:
		return p.Error
	default:
		return ""
	}
}

func merge(p, fallback Palette) Palette {
	return Palette{
		Trace:     f(p.Trace, fallback.Trace),
		Debug:     f(p.Debug, fallback.Debug),
		Info:      f(p.Info, fallback.Info),
		Warn:      f(p.Warn, fallback.Warn),
		Error:     f(p.Error, fallback.Error),
		Timestamp: f(p.Timestamp, fallback.Timestamp),
		Caller:    f(p.Caller, fallback.Caller),
		Message:   f(p.Message, fallback.Message),
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
