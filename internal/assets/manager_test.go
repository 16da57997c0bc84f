package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindFontPrefersPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Ubuntu-B.ttf")
	if err := os.WriteFile(path, []byte("local"), 0o644); err != nil {
		t.Fatal(err)
	}
	sys := t.TempDir()
	if err := os.WriteFile(filepath.Join(sys, "Ubuntu-B.ttf"), []byte("system"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, origin, err := FindFont(path, []string{sys})
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}
	if string(data) != "local" || origin != path {
		t.Fatalf("got %q from %s, want the local file", data, origin)
	}
}

func TestFindFontFallsBackToSystemDirs(t *testing.T) {
	empty := t.TempDir()
	sys := t.TempDir()
	nested := filepath.Join(sys, "truetype", "ubuntu")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(nested, "Ubuntu-B.ttf")
	if err := os.WriteFile(want, []byte("system"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, origin, err := FindFont(filepath.Join(t.TempDir(), "Ubuntu-B.ttf"), []string{empty, filepath.Join(sys, "missing"), sys})
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}
	if string(data) != "system" || origin != want {
		t.Fatalf("got %q from %s, want %s", data, origin, want)
	}
}

func TestFindFontNotFound(t *testing.T) {
	_, _, err := FindFont(filepath.Join(t.TempDir(), "nope.ttf"), []string{t.TempDir()})
	if !errors.Is(err, ErrFontNotFound) {
		t.Fatalf("expected ErrFontNotFound, got %v", err)
	}
}

func TestLoadFontsEmbeddedFallback(t *testing.T) {
	f := LoadFonts(filepath.Join(t.TempDir(), "definitely-missing-font.ttf"))
	if f.Origin != "embedded" {
		t.Fatalf("origin: got=%s want=embedded", f.Origin)
	}
	if f.Regular.Size != FontSize || f.Big.Size != BigFontSize {
		t.Fatalf("sizes: got=%v/%v", f.Regular.Size, f.Big.Size)
	}
}

func TestLoadFontsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if f := LoadFonts(path); f.Origin != "embedded" {
		t.Fatalf("origin: got=%s want=embedded", f.Origin)
	}
}
