package ansi

import "testing"

func TestPaletteByNameCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "default", want: PaletteDefault},
		{name: "nord", want: PaletteNord},
		{name: "dracula", want: PaletteDracula},
		{name: "solarized-dark", want: PaletteSolarizedDark},
		{name: "mono", want: PaletteMono},
	}

	for _, tc := range cases {
		got := PaletteByName(tc.name)
		if got == nil {
			t.Fatalf("expected palette %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("palette %q mismatch", tc.name)
		}
	}
}

func TestPaletteByNameAliases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Palette
	}{
		{name: "solarized_dark", want: PaletteSolarizedDark},
		{name: "Solarized", want: PaletteSolarizedDark},
		{name: "PaletteGruvbox", want: PaletteGruvbox},
		{name: "palette-nord", want: PaletteNord},
		{name: " monochrome ", want: PaletteMono},
	}

	for _, tc := range cases {
		got := PaletteByName(tc.name)
		if got == nil {
			t.Fatalf("expected alias %q to resolve", tc.name)
		}
		if *got != tc.want {
			t.Fatalf("alias %q mismatch", tc.name)
		}
	}
}

func TestPaletteByNameInvalid(t *testing.T) {
	t.Parallel()

	got := PaletteByName("does-not-exist")
	if got != &PaletteDefault {
		t.Fatalf("expected unknown palette lookup to return default palette")
	}
	if PaletteByName("") != &PaletteDefault {
		t.Fatalf("expected empty palette name to return default palette")
	}
}

func TestAvailablePaletteNames(t *testing.T) {
	t.Parallel()

	names := AvailablePaletteNames()
	want := []string{"default", "dracula", "gruvbox", "mono", "nord", "solarized-dark"}
	if len(names) != len(want) {
		t.Fatalf("unexpected palette names: got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected palette names: got %v want %v", names, want)
		}
	}
}
