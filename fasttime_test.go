package tinylog

import (
	"testing"
	"time"
)

func TestAppendTimestampMatchesFormat(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("east", 5*3600+30*60),
		time.FixedZone("west", -8*3600),
	}
	instants := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 120000000, time.UTC),
		time.Date(2030, 7, 4, 12, 30, 5, 1, time.UTC),
		time.Date(12000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	layouts := []string{time.RFC3339, time.RFC3339Nano, time.Kitchen, "2006-01-02 15:04:05.000"}
	for _, loc := range zones {
		for _, instant := range instants {
			ts := instant.In(loc)
			for _, layout := range layouts {
				want := ts.Format(layout)
				if got := string(appendTimestamp(nil, ts, layout)); got != want {
					t.Fatalf("layout %q at %v: got %q want %q", layout, ts, got, want)
				}
			}
		}
	}
}

func BenchmarkAppendTimestampRFC3339(b *testing.B) {
	ts := time.Date(2025, 5, 1, 8, 15, 0, 0, time.UTC)
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	for b.Loop() {
		buf = appendTimestamp(buf[:0], ts, time.RFC3339)
	}
}
