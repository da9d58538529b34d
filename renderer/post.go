package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"wallrus/preset"
	"wallrus/shader"
)

// postPass is one compiled post-processing program. The location fields
// cover the union of all post uniforms; programs that lack one resolve it
// to -1 and the upload is skipped, exactly like the pattern pass.
type postPass struct {
	program uint32

	textureLoc    int32
	resolutionLoc int32

	blurModeLoc   int32
	blurAmountLoc int32
	blurAngleLoc  int32

	bloomThresholdLoc int32
	bloomIntensityLoc int32

	chromaStrengthLoc int32
	chromaAngleLoc    int32
}

func newPostPass(fragmentSource string) (*postPass, error) {
	program, err := newProgram(shader.VertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	p := &postPass{program: program}
	p.textureLoc = uniformLocation(program, "uTexture")
	p.resolutionLoc = uniformLocation(program, "iResolution")
	p.blurModeLoc = uniformLocation(program, "uBlurMode")
	p.blurAmountLoc = uniformLocation(program, "uBlurAmount")
	p.blurAngleLoc = uniformLocation(program, "uBlurAngle")
	p.bloomThresholdLoc = uniformLocation(program, "uBloomThreshold")
	p.bloomIntensityLoc = uniformLocation(program, "uBloomIntensity")
	p.chromaStrengthLoc = uniformLocation(program, "uChromaStrength")
	p.chromaAngleLoc = uniformLocation(program, "uChromaAngle")

	return p, nil
}

func (p *postPass) destroy() {
	gl.DeleteProgram(p.program)
}

// runPost applies the enabled post passes, bouncing between the two targets,
// and returns the target holding the final image. Disabled or zero-strength
// passes are skipped entirely, so with everything off the scene target comes
// back untouched.
func (r *Renderer) runPost(s preset.State, scene, scratch *target) *target {
	src, dst := scene, scratch

	run := func(p *postPass, set func()) {
		gl.BindFramebuffer(gl.FRAMEBUFFER, dst.fbo)
		gl.Viewport(0, 0, int32(dst.width), int32(dst.height))
		gl.UseProgram(p.program)
		if p.resolutionLoc != -1 {
			gl.Uniform3f(p.resolutionLoc, float32(dst.width), float32(dst.height), 1)
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, src.texture)
		if p.textureLoc != -1 {
			gl.Uniform1i(p.textureLoc, 0)
		}
		set()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.BindVertexArray(r.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
		src, dst = dst, src
	}

	if s.Blur != preset.BlurNone && s.BlurAmount > 0 {
		run(r.blurPass, func() {
			if r.blurPass.blurModeLoc != -1 {
				gl.Uniform1i(r.blurPass.blurModeLoc, int32(s.Blur))
			}
			if r.blurPass.blurAmountLoc != -1 {
				gl.Uniform1f(r.blurPass.blurAmountLoc, s.BlurAmount)
			}
			if r.blurPass.blurAngleLoc != -1 {
				gl.Uniform1f(r.blurPass.blurAngleLoc, s.BlurAngle)
			}
		})
	}
	if s.Bloom {
		run(r.bloomPass, func() {
			if r.bloomPass.bloomThresholdLoc != -1 {
				gl.Uniform1f(r.bloomPass.bloomThresholdLoc, s.BloomThreshold)
			}
			if r.bloomPass.bloomIntensityLoc != -1 {
				gl.Uniform1f(r.bloomPass.bloomIntensityLoc, s.BloomIntensity)
			}
		})
	}
	if s.Chroma && s.ChromaStrength > 0 {
		run(r.chromaPass, func() {
			if r.chromaPass.chromaStrengthLoc != -1 {
				gl.Uniform1f(r.chromaPass.chromaStrengthLoc, s.ChromaStrength)
			}
			if r.chromaPass.chromaAngleLoc != -1 {
				gl.Uniform1f(r.chromaPass.chromaAngleLoc, s.ChromaAngle)
			}
		})
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return src
}
