package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is exactly four ordered colors. Every render consumes a complete
// palette; there is no partial form.
type Palette struct {
	Name   string
	Colors [4]colorful.Color
}

// Default returns the built-in startup palette.
func Default() Palette {
	return Palette{
		Name: "Default",
		Colors: [4]colorful.Color{
			{R: 0.11, G: 0.25, B: 0.60},
			{R: 0.90, G: 0.35, B: 0.50},
			{R: 0.20, G: 0.60, B: 0.40},
			{R: 0.80, G: 0.70, B: 0.20},
		},
	}
}

// RGB returns color i as float32 components, the form uniform uploads want.
func (p Palette) RGB(i int) (float32, float32, float32) {
	c := p.Colors[i]
	return float32(c.R), float32(c.G), float32(c.B)
}

// Hex returns the palette as four lowercase hex strings.
func (p Palette) Hex() [4]string {
	var out [4]string
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

// FromHex builds a palette from four CSS-style hex colors like "#1c3fa0".
func FromHex(name string, hex [4]string) (Palette, error) {
	p := Palette{Name: name}
	for i, h := range hex {
		c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(h)))
		if err != nil {
			return Palette{}, fmt.Errorf("palette color %d: %w", i+1, err)
		}
		p.Colors[i] = c
	}
	return p, nil
}

// FromCode builds a palette from a 24-digit hex code, six digits per color.
// This is the format the ColorHunt feed uses.
func FromCode(code string) (Palette, error) {
	code = strings.TrimSpace(code)
	if len(code) != 24 {
		return Palette{}, fmt.Errorf("palette code must be 24 hex digits, got %d", len(code))
	}
	var hex [4]string
	for i := range hex {
		hex[i] = "#" + code[i*6:(i+1)*6]
	}
	return FromHex(code, hex)
}

// Random generates a palette by stepping the hue by the golden angle from a
// random start, at staggered saturation and value. The four colors come out
// distinct but related.
func Random(rng *rand.Rand) Palette {
	hue := rng.Float64() * 360
	sat := [4]float64{0.55, 0.70, 0.60, 0.45}
	val := [4]float64{0.45, 0.75, 0.60, 0.90}
	p := Palette{Name: "Random"}
	for i := range p.Colors {
		p.Colors[i] = colorful.Hsv(hue, sat[i], val[i])
		hue = math.Mod(hue+137.5077, 360)
	}
	return p
}
