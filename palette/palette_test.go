package palette

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Name != "Default" {
		t.Errorf("Name = %q, want Default", p.Name)
	}
	for i, c := range p.Colors {
		if !c.IsValid() {
			t.Errorf("color %d = %v is out of gamut", i, c)
		}
	}
}

func TestRGB(t *testing.T) {
	p := Default()
	r, g, b := p.RGB(0)
	if r != float32(p.Colors[0].R) || g != float32(p.Colors[0].G) || b != float32(p.Colors[0].B) {
		t.Errorf("RGB(0) = (%v, %v, %v), want components of %v", r, g, b, p.Colors[0])
	}
}

func TestFromHexRoundTrip(t *testing.T) {
	hex := [4]string{"#96ceb4", "#ffeead", "#d9534f", "#ffad60"}
	p, err := FromHex("Sunset", hex)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if p.Name != "Sunset" {
		t.Errorf("Name = %q, want Sunset", p.Name)
	}
	if got := p.Hex(); got != hex {
		t.Errorf("Hex() = %v, want %v", got, hex)
	}
}

func TestFromHexNormalizesInput(t *testing.T) {
	p, err := FromHex("x", [4]string{" #96CEB4 ", "#FFEEAD", "#d9534f", "#ffad60"})
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if p.Hex()[0] != "#96ceb4" {
		t.Errorf("Hex()[0] = %q, want #96ceb4", p.Hex()[0])
	}
}

func TestFromHexRejectsGarbage(t *testing.T) {
	if _, err := FromHex("x", [4]string{"#96ceb4", "#ffeead", "nope", "#ffad60"}); err == nil {
		t.Error("expected error for malformed hex color")
	}
}

func TestFromCode(t *testing.T) {
	p, err := FromCode("96ceb4ffeeadd9534fffad60")
	if err != nil {
		t.Fatalf("FromCode: %v", err)
	}
	want := [4]string{"#96ceb4", "#ffeead", "#d9534f", "#ffad60"}
	if got := p.Hex(); got != want {
		t.Errorf("Hex() = %v, want %v", got, want)
	}
}

func TestFromCodeRejectsWrongLength(t *testing.T) {
	for _, code := range []string{"", "96ceb4", "96ceb4ffeeadd9534fffad60ff"} {
		if _, err := FromCode(code); err == nil {
			t.Errorf("FromCode(%q) should fail", code)
		}
	}
}

func TestRandomIsSeeded(t *testing.T) {
	a := Random(rand.New(rand.NewSource(7)))
	b := Random(rand.New(rand.NewSource(7)))
	if a != b {
		t.Error("same seed should give the same palette")
	}

	c := Random(rand.New(rand.NewSource(8)))
	if a == c {
		t.Error("different seeds should give different palettes")
	}
}

func TestRandomColorsDistinctAndValid(t *testing.T) {
	p := Random(rand.New(rand.NewSource(42)))
	for i := 0; i < 4; i++ {
		if !p.Colors[i].IsValid() {
			t.Errorf("color %d = %v is out of gamut", i, p.Colors[i])
		}
		for j := i + 1; j < 4; j++ {
			if p.Colors[i] == p.Colors[j] {
				t.Errorf("colors %d and %d are identical", i, j)
			}
		}
	}
}

// bandImage paints four horizontal color bands, the layout swatch files use.
func bandImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bands := [4]color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	for y := 0; y < h; y++ {
		band := y * 4 / h
		if band > 3 {
			band = 3
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, bands[band])
		}
	}
	return img
}

func TestFromImageSamplesBands(t *testing.T) {
	p := FromImage("bands", bandImage(8, 8))

	want := [4][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	for i, c := range p.Colors {
		if math.Abs(c.R-want[i][0]) > 1e-4 || math.Abs(c.G-want[i][1]) > 1e-4 || math.Abs(c.B-want[i][2]) > 1e-4 {
			t.Errorf("color %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestFromImageTinyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	p := FromImage("tiny", img)
	for i, c := range p.Colors {
		if c.R < 0.4 || c.R > 0.6 {
			t.Errorf("color %d = %v, want the single gray pixel", i, c)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, bandImage(16, 16)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.Name != "forest" {
		t.Errorf("Name = %q, want forest", p.Name)
	}
	if p.Colors[0].R < 0.99 {
		t.Errorf("first band should be red, got %v", p.Colors[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
