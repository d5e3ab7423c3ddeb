//go:build !tinylog_direct

package tinylog

import "io"

// ConfigureFromEnv reads the environment like SinkFromEnv, registers the
// resulting sink, applies {prefix}LEVEL as the runtime floor and
// {prefix}CALLER as the metadata switch. The returned closer releases any
// file opened for OUTPUT. An OUTPUT that cannot be opened leaves the sink on
// the base writer and is reported as the error.
func ConfigureFromEnv(opts ...EnvOption) (io.Closer, error) {
	settings, err := SinkFromEnv(opts...)
	SetLogger(settings.Sink)
	if settings.HasLevel {
		SetMinLevel(settings.Level)
	}
	if settings.HasCaller {
		SetCaptureMetadata(settings.Caller)
	}
	return settings.Closer, err
}
