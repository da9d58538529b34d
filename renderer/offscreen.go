package renderer

import (
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"wallrus/palette"
	"wallrus/preset"
)

// RenderToBuffer draws one frame of the given state at an arbitrary size and
// returns it as an image, without touching the window or the interactive
// targets. The same state at the same size yields the same pixels, so the
// exported file agrees with the on-screen preview.
func (r *Renderer) RenderToBuffer(s preset.State, pal palette.Palette, width, height int) (*image.RGBA, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	pass, err := r.ensurePass(s.Kind)
	if err != nil {
		return nil, err
	}

	scene, err := newTarget(width, height)
	if err != nil {
		return nil, err
	}
	defer scene.destroy()
	scratch, err := newTarget(width, height)
	if err != nil {
		return nil, err
	}
	defer scratch.destroy()

	r.drawPattern(pass, s, pal, scene)
	final := r.runPost(s, scene, scratch)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.BindFramebuffer(gl.FRAMEBUFFER, final.fbo)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	// ReadPixels hands back rows bottom-up, image.RGBA wants them top-down.
	flipRows(img.Pix, width, height)

	return img, nil
}

func flipRows(pix []byte, width, height int) {
	stride := width * 4
	row := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bottom := pix[(height-1-y)*stride : (height-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
