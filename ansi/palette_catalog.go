package ansi

import (
	"sort"
	"strings"
)

// 256-colour palettes.
var (
	PaletteNord = Palette{
		Trace:     "\x1b[38;5;60m",
		Debug:     "\x1b[38;5;109m",
		Info:      "\x1b[1;38;5;110m",
		Warn:      "\x1b[1;38;5;222m",
		Error:     "\x1b[1;38;5;174m",
		Timestamp: "\x1b[38;5;59m",
		Caller:    "\x1b[38;5;116m",
		Message:   "\x1b[38;5;255m",
	}
	PaletteDracula = Palette{
		Trace:     "\x1b[38;5;61m",
		Debug:     "\x1b[38;5;117m",
		Info:      "\x1b[1;38;5;84m",
		Warn:      "\x1b[1;38;5;228m",
		Error:     "\x1b[1;38;5;203m",
		Timestamp: "\x1b[38;5;103m",
		Caller:    "\x1b[38;5;212m",
		Message:   "\x1b[38;5;231m",
	}
	PaletteGruvbox = Palette{
		Trace:     "\x1b[38;5;102m",
		Debug:     "\x1b[38;5;108m",
		Info:      "\x1b[1;38;5;142m",
		Warn:      "\x1b[1;38;5;214m",
		Error:     "\x1b[1;38;5;167m",
		Timestamp: "\x1b[38;5;245m",
		Caller:    "\x1b[38;5;109m",
		Message:   "\x1b[38;5;223m",
	}
	PaletteSolarizedDark = Palette{
		Trace:     "\x1b[38;5;240m",
		Debug:     "\x1b[38;5;37m",
		Info:      "\x1b[1;38;5;64m",
		Warn:      "\x1b[1;38;5;136m",
		Error:     "\x1b[1;38;5;160m",
		Timestamp: "\x1b[38;5;241m",
		Caller:    "\x1b[38;5;33m",
		Message:   "\x1b[38;5;254m",
	}
	// PaletteMono keeps output bold/faint only, for terminals with poor
	// colour support.
	PaletteMono = Palette{
		Trace:     Faint,
		Debug:     Faint,
		Info:      Bold,
		Warn:      Bold,
		Error:     Bold,
		Timestamp: Faint,
		Caller:    Faint,
		Message:   Reset,
	}
)

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"nord":           &PaletteNord,
	"dracula":        &PaletteDracula,
	"gruvbox":        &PaletteGruvbox,
	"solarized-dark": &PaletteSolarizedDark,
	"mono":           &PaletteMono,
}

var paletteAliases = map[string]string{
	"solarizeddark": "solarized-dark",
	"solarized":     "solarized-dark",
	"monochrome":    "mono",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support a few aliases. Unknown names
// resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
