//go:build !tinylog_direct && !tinylog_no_extension

// Command tinylog-demo emits one record per level through a chosen backend
// so the console rendering, the adapters and the level gates can be tried
// from a shell.
//
//	tinylog-demo --level debug --timestamp
//	tinylog-demo --backend zerolog --caller
//	TINYLOG_LEVEL=warn tinylog-demo --backend env
//
// The command registers sinks at run time, so it is not built with the
// tinylog_direct or tinylog_no_extension tags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkt.systems/tinylog"
	"pkt.systems/tinylog/adapter/logrsink"
	"pkt.systems/tinylog/adapter/logrussink"
	"pkt.systems/tinylog/adapter/zapsink"
	"pkt.systems/tinylog/adapter/zerologsink"
	"pkt.systems/tinylog/ansi"
)

const programName = "tinylog-demo"

type parseResult int

const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

var backends = []string{"console", "env", "logrus", "zap", "zerolog"}

type options struct {
	backend   string
	level     string
	output    string
	palette   string
	noColor   bool
	timestamp bool
	utc       bool
	caller    bool
}

func parseOptions(args []string, out io.Writer) (options, parseResult) {
	var opts options
	var helpFlag, palettesFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVar(&palettesFlag, "palettes", false, "List the available colour palettes")

	fs.StringVarP(&opts.backend, "backend", "b", "console",
		"Where records go: "+strings.Join(backends, ", "))
	fs.StringVarP(&opts.level, "level", "l", "trace",
		"Runtime floor: trace, debug, info, warn or error")
	fs.StringVarP(&opts.output, "output", "o", "",
		`Append console output to this file as well as stdout.
Only used by the console backend.`)
	fs.StringVar(&opts.palette, "palette", "default", "Colour palette for the console backend")
	fs.BoolVar(&opts.noColor, "no-color", false, "Never emit colour")
	fs.BoolVarP(&opts.timestamp, "timestamp", "t", false, "Prefix console lines with a timestamp")
	fs.BoolVar(&opts.utc, "utc", false, "Render timestamps in UTC")
	fs.BoolVarP(&opts.caller, "caller", "c", false, "Capture and print the call site")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(out, "Error:", err.Error())
		return opts, parseFailed
	}
	if helpFlag {
		fmt.Fprintf(out, "Usage: %s [options]\n\n", name)
		fs.PrintDefaults()
		return opts, parseStop
	}
	if palettesFlag {
		fmt.Fprintln(out, strings.Join(ansi.AvailablePaletteNames(), "\n"))
		return opts, parseStop
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(out, "Error: unexpected arguments:", strings.Join(fs.Args(), " "))
		return opts, parseFailed
	}
	return opts, parseContinue
}

// configure registers the sink for the selected backend and applies the
// level and caller options. The returned closer releases any file opened
// for output.
func configure(opts options, stdout io.Writer) (io.Closer, error) {
	level, ok := tinylog.ParseLevel(opts.level)
	if !ok {
		return nil, fmt.Errorf("unknown level %q", opts.level)
	}
	var closer io.Closer = nopCloser{}
	switch opts.backend {
	case "console":
		copts := tinylog.ConsoleOptions{
			Timestamp: opts.timestamp,
			UTC:       opts.utc,
			Caller:    opts.caller,
			NoColor:   opts.noColor,
			Palette:   ansi.PaletteByName(opts.palette),
		}
		tinylog.SetLogger(tinylog.NewConsoleSink(stdout, copts))
		if opts.output != "" {
			file, err := tinylog.OpenFile(opts.output, copts)
			if err != nil {
				return nil, err
			}
			tinylog.SetExtension(file.Extension())
			closer = file
		}
	case "env":
		c, err := tinylog.ConfigureFromEnv(tinylog.WithEnvWriter(stdout))
		if err != nil {
			return c, err
		}
		if opts.caller {
			tinylog.SetCaptureMetadata(true)
		}
		return c, nil
	case "zap":
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		if !opts.timestamp {
			encoderCfg.TimeKey = ""
		}
		if !opts.noColor {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(stdout), zapcore.DebugLevel)
		tinylog.SetLogger(zapsink.New(zap.New(core, zap.WithCaller(false))))
	case "zerolog":
		writer := zerolog.ConsoleWriter{Out: stdout, NoColor: opts.noColor, TimeFormat: time.RFC3339}
		if !opts.timestamp {
			writer.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		logger := zerolog.New(writer).Level(zerolog.TraceLevel)
		if opts.timestamp {
			logger = logger.With().Timestamp().Logger()
		}
		tinylog.SetLogger(zerologsink.New(logger))
	case "logrus":
		logger := logrus.New()
		logger.SetOutput(stdout)
		logger.SetLevel(logrus.TraceLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    opts.noColor,
			DisableTimestamp: !opts.timestamp,
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
		})
		tinylog.SetLogger(logrussink.New(logger))
	default:
		return nil, fmt.Errorf("unknown backend %q, want one of %s", opts.backend, strings.Join(backends, ", "))
	}
	tinylog.SetMinLevel(level)
	tinylog.SetCaptureMetadata(opts.caller)
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func demo() {
	tinylog.Trace("entering %s", "demo")
	tinylog.Debug("config loaded from %s", "flags")
	tinylog.Info("listening on %s", ":8080")
	tinylog.Warn("disk %s at %d%%", "/var", 91)
	tinylog.Error("request failed: %v", errors.New("connection reset"))

	tinylog.StdLoggerClassified().Print("warning: bridged from the log package")

	logger := logr.New(logrsink.New()).WithName("demo")
	logger.V(1).Info("logr verbosity one", "attempt", 2)
	logger.Error(errors.New("timeout"), "logr error", "peer", "10.0.0.7")
}

func main() {
	opts, result := parseOptions(os.Args, os.Stderr)
	switch result {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	closer, err := configure(opts, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
	defer closer.Close()

	demo()
}
