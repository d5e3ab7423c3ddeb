//go:build !tinylog_direct

package tinylog

import (
	"bytes"
	"testing"
)

func TestConfigureFromEnvRegisters(t *testing.T) {
	isolate(t, nil, newGate(false, TraceLevel, true))
	t.Cleanup(func() { SetCaptureMetadata(false) })
	t.Setenv(testEnvPrefix+"LEVEL", "error")
	t.Setenv(testEnvPrefix+"CALLER", "true")

	var buf bytes.Buffer
	closer, err := ConfigureFromEnv(WithEnvPrefix(testEnvPrefix), WithEnvWriter(&buf))
	if err != nil {
		t.Fatalf("ConfigureFromEnv: %v", err)
	}
	defer closer.Close()

	if got, _ := MinLevel(); got != ErrorLevel {
		t.Fatalf("runtime floor not applied: %v", got)
	}
	if CapturingMetadata() != metadataBuilt {
		t.Fatalf("CALLER not applied")
	}

	Dispatch(NewRecord(WarnLevel, "filtered"))
	Dispatch(NewRecord(ErrorLevel, "kept"))
	if got := buf.String(); got != "[ERROR] kept\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
