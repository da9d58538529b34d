package wallpaper

import (
	"image"

	"golang.org/x/image/draw"
)

// scaleToCover resizes src to fill w x h completely, cropping whichever axis
// overflows. The crop is centered, so the pattern's focal point survives
// aspect changes between the preview and the screen.
func scaleToCover(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || w == 0 || h == 0 {
		return dst
	}

	crop := sb
	srcAspect := float64(sb.Dx()) / float64(sb.Dy())
	dstAspect := float64(w) / float64(h)
	switch {
	case srcAspect > dstAspect:
		cw := int(float64(sb.Dy()) * dstAspect)
		if cw < 1 {
			cw = 1
		}
		x0 := sb.Min.X + (sb.Dx()-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	case srcAspect < dstAspect:
		ch := int(float64(sb.Dx()) / dstAspect)
		if ch < 1 {
			ch = 1
		}
		y0 := sb.Min.Y + (sb.Dy()-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}
