package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"wallrus/preset"
)

func TestParseResolutionPresets(t *testing.T) {
	cases := map[string]Resolution{
		"display": {Name: "Display"},
		"HD":      {Name: "HD", Width: 1920, Height: 1080},
		"qhd":     {Name: "QHD", Width: 2560, Height: 1440},
		"4K":      {Name: "4K", Width: 3840, Height: 2160},
		"phone":   {Name: "Phone", Width: 1080, Height: 2400},
	}
	for in, want := range cases {
		got, err := ParseResolution(in)
		if err != nil {
			t.Errorf("ParseResolution(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseResolution(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestParseResolutionExplicit(t *testing.T) {
	got, err := ParseResolution("2560x1080")
	if err != nil {
		t.Fatalf("ParseResolution: %v", err)
	}
	if got.Width != 2560 || got.Height != 1080 {
		t.Errorf("got %+v, want 2560x1080", got)
	}
	if got.IsDisplay() {
		t.Error("explicit size should not defer to the display")
	}
}

func TestParseResolutionRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "huge", "1920x", "x1080", "0x100", "-5x100", "axb"} {
		if _, err := ParseResolution(in); err == nil {
			t.Errorf("ParseResolution(%q) should fail", in)
		}
	}
}

func TestResolutionString(t *testing.T) {
	if got := (Resolution{Name: "Display"}).String(); got != "Display" {
		t.Errorf("String() = %q, want Display", got)
	}
	if got := (Resolution{Name: "HD", Width: 1920, Height: 1080}).String(); got != "HD (1920x1080)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Resolution{Width: 800, Height: 600}).String(); got != "800x600" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"png", "PNG"} {
		if f, err := ParseFormat(in); err != nil || f != FormatPNG {
			t.Errorf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	for _, in := range []string{"jpg", "jpeg", "JPEG"} {
		if f, err := ParseFormat(in); err != nil || f != FormatJPEG {
			t.Errorf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	if _, err := ParseFormat("bmp"); err == nil {
		t.Error("ParseFormat(bmp) should fail")
	}
}

func TestFilename(t *testing.T) {
	at := time.Unix(1724666400, 0)
	if got := Filename(preset.Plasma, FormatPNG, at); got != "wallrus_plasma_1724666400.png" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(preset.Bars, FormatJPEG, at); got != "wallrus_bars_1724666400.jpg" {
		t.Errorf("Filename = %q", got)
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"still.png", "still.jpg"} {
		path := filepath.Join(dir, name)
		if err := Save(testImage(), path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		decoded, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
			t.Errorf("%s bounds = %v, want 8x6", name, decoded.Bounds())
		}
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "still.png")
	if err := Save(testImage(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "still.gif")
	if err := Save(testImage(), path); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for unsupported formats")
	}
}

func TestDefaultDir(t *testing.T) {
	if DefaultDir() == "" {
		t.Error("DefaultDir returned an empty path")
	}
}
