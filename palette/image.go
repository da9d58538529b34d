package palette

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Blank imports for image decoders so image.Decode can handle them.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FromImage samples four colors from a swatch image. Swatches lay their
// colors out as horizontal bands, so the vertical centerline is probed at
// the middle of each quarter.
func FromImage(name string, img image.Image) Palette {
	bounds := img.Bounds()
	cx := bounds.Min.X + bounds.Dx()/2
	band := bounds.Dy() / 4

	p := Palette{Name: name}
	for i := 0; i < 4; i++ {
		cy := bounds.Min.Y + band*i + band/2
		if cy > bounds.Max.Y-1 {
			cy = bounds.Max.Y - 1
		}
		c, ok := colorful.MakeColor(img.At(cx, cy))
		if !ok {
			// Fully transparent pixel, fall back to black.
			c = colorful.Color{}
		}
		p.Colors[i] = c
	}
	return p
}

// LoadFile decodes a swatch image and samples a palette from it. The palette
// is named after the file stem.
func LoadFile(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to open palette image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to decode palette image %s: %w", path, err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return FromImage(name, img), nil
}
