package tinylog

import (
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/tinylog/ansi"
)

// EnvOption customizes SinkFromEnv and ConfigureFromEnv.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix  string
	options ConsoleOptions
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix. Defaults to
// "TINYLOG_".
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvConsoleOptions seeds the console options that environment values
// override.
func WithEnvConsoleOptions(opts ConsoleOptions) EnvOption {
	return func(cfg *envConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter sets the writer used when OUTPUT is unset or "default".
// Defaults to os.Stdout.
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) {
		cfg.writer = w
	}
}

// EnvSettings is the result of reading the environment.
type EnvSettings struct {
	// Sink renders to the configured output.
	Sink Sink
	// Closer releases a file opened for OUTPUT. It is never nil.
	Closer io.Closer
	// Level is the runtime floor requested by {prefix}LEVEL, if any.
	Level    Level
	HasLevel bool
	// Caller reports whether {prefix}CALLER asked for metadata capture.
	Caller    bool
	HasCaller bool
}

// SinkFromEnv builds a console sink from environment variables. Recognised
// variables are {prefix}LEVEL, OUTPUT, NO_COLOR, FORCE_COLOR, TIMESTAMP,
// TIME_FORMAT, UTC, PALETTE and CALLER. OUTPUT accepts stdout, stderr,
// default, a file path, or stdout+/stderr+/default+<path> to write to both.
//
// When OUTPUT names a file that cannot be opened, the returned settings
// fall back to the base writer and the error is returned alongside them.
func SinkFromEnv(opts ...EnvOption) (EnvSettings, error) {
	cfg := envConfig{prefix: "TINYLOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	base := cfg.writer
	if base == nil {
		base = os.Stdout
	}
	prefix := cfg.prefix
	resolved := cfg.options
	settings := EnvSettings{Closer: nopCloser{}}

	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		settings.Level, settings.HasLevel = ParseLevel(value)
	}
	if value, ok := lookupEnv(prefix, "CALLER"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			settings.Caller, settings.HasCaller = parsed, true
			resolved.Caller = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "TIMESTAMP"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.Timestamp = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "TIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.TimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolved.Palette = ansi.PaletteByName(value)
	}

	writer := base
	var outputErr error
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		w, closer, err := writerFromEnvOutput(value, base)
		if err != nil {
			outputErr = err
		} else {
			writer = w
			settings.Closer = closer
		}
	}
	settings.Sink = NewConsoleSink(writer, resolved)
	return settings, outputErr
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, io.Closer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nopCloser{}, nil
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	case "default":
		return base, nopCloser{}, nil
	}
	var primary io.Writer
	path := trimmed
	for _, p := range []struct {
		prefix string
		w      io.Writer
	}{
		{"stdout+", os.Stdout},
		{"stderr+", os.Stderr},
		{"default+", base},
	} {
		if strings.HasPrefix(lowered, p.prefix) {
			primary = p.w
			path = strings.TrimSpace(trimmed[len(p.prefix):])
			break
		}
	}
	if path == "" {
		return primary, nopCloser{}, nil
	}
	file, err := openLogOutputFile(path)
	if err != nil {
		return base, nopCloser{}, err
	}
	if primary == nil {
		return file, file, nil
	}
	return newTeeWriter(primary, file), file, nil
}
