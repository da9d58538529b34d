package palette

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// SaveSwatch writes the palette as a 1x4 PNG, one pixel per color top to
// bottom. FromImage samples band midpoints, so these round-trip exactly.
func SaveSwatch(p Palette, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 1, 4))
	for i, c := range p.Colors {
		r, g, b := c.RGB255()
		img.SetRGBA(0, i, color.RGBA{R: r, G: g, B: b, A: 255})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode swatch %s: %w", path, err)
	}
	return f.Close()
}
