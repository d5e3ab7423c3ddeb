package ansi

import "testing"

func TestSetPaletteOverridesValues(t *testing.T) {
	original := Snapshot()
	t.Cleanup(func() {
		SetPalette(original)
	})

	SetPalette(Palette{Info: "INFO", Message: "MSG"})

	got := Snapshot()
	if got.Info != "INFO" || got.Message != "MSG" {
		t.Fatalf("palette not applied: %+v", got)
	}
	if got.Error != original.Error {
		t.Fatalf("empty entries should keep previous values: got %q want %q", got.Error, original.Error)
	}
}

func TestResolveFillsEmptyEntries(t *testing.T) {
	partial := &Palette{Warn: "W"}
	got := Resolve(partial)
	if got.Warn != "W" {
		t.Fatalf("unexpected warn colour: got %q", got.Warn)
	}
	if got.Info != Snapshot().Info {
		t.Fatalf("expected info colour from package default, got %q", got.Info)
	}
	if Resolve(nil) != Snapshot() {
		t.Fatalf("nil palette should resolve to the package default")
	}
}

func TestPaletteLevel(t *testing.T) {
	p := PaletteDefault
	want := []string{p.Trace, p.Debug, p.Info, p.Warn, p.Error}
	for i, w := range want {
		if got := p.Level(i); got != w {
			t.Fatalf("level %d colour mismatch: got %q want %q", i, got, w)
		}
	}
	if got := p.Level(99); got != "" {
		t.Fatalf("expected empty colour for unknown level, got %q", got)
	}
}
