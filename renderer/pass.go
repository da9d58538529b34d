package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"wallrus/palette"
	"wallrus/preset"
	"wallrus/shader"
)

// patternPass holds one compiled pattern program and its cached uniform
// locations. Uniforms the pattern never reads resolve to -1 and their
// uploads are skipped, which is what makes irrelevant state fields harmless.
type patternPass struct {
	program uint32

	resolutionLoc int32
	timeLoc       int32
	colorLoc      [4]int32

	angleLoc  int32
	scaleLoc  int32
	speedLoc  int32
	centerLoc int32
	blendLoc  int32

	distortTypeLoc     int32
	distortStrengthLoc int32
	rippleFreqLoc      int32

	lightingTypeLoc  int32
	lightStrengthLoc int32
	bevelWidthLoc    int32
	lightAngleLoc    int32

	noiseLoc  int32
	ditherLoc int32
}

func newPatternPass(kind preset.PatternKind) (*patternPass, error) {
	program, err := newProgram(shader.VertexSource, shader.FragmentSource(kind))
	if err != nil {
		return nil, err
	}

	p := &patternPass{program: program}
	p.resolutionLoc = uniformLocation(program, "iResolution")
	p.timeLoc = uniformLocation(program, "iTime")
	p.colorLoc[0] = uniformLocation(program, "uColor1")
	p.colorLoc[1] = uniformLocation(program, "uColor2")
	p.colorLoc[2] = uniformLocation(program, "uColor3")
	p.colorLoc[3] = uniformLocation(program, "uColor4")
	p.angleLoc = uniformLocation(program, "uAngle")
	p.scaleLoc = uniformLocation(program, "uScale")
	p.speedLoc = uniformLocation(program, "uSpeed")
	p.centerLoc = uniformLocation(program, "uCenter")
	p.blendLoc = uniformLocation(program, "uBlend")
	p.distortTypeLoc = uniformLocation(program, "uDistortType")
	p.distortStrengthLoc = uniformLocation(program, "uDistortStrength")
	p.rippleFreqLoc = uniformLocation(program, "uRippleFreq")
	p.lightingTypeLoc = uniformLocation(program, "uLightingType")
	p.lightStrengthLoc = uniformLocation(program, "uLightStrength")
	p.bevelWidthLoc = uniformLocation(program, "uBevelWidth")
	p.lightAngleLoc = uniformLocation(program, "uLightAngle")
	p.noiseLoc = uniformLocation(program, "uNoise")
	p.ditherLoc = uniformLocation(program, "uDither")

	return p, nil
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// upload makes the program current and pushes the whole state and palette.
func (p *patternPass) upload(s preset.State, pal palette.Palette, width, height int) {
	gl.UseProgram(p.program)

	if p.resolutionLoc != -1 {
		gl.Uniform3f(p.resolutionLoc, float32(width), float32(height), 1)
	}
	if p.timeLoc != -1 {
		gl.Uniform1f(p.timeLoc, s.Time)
	}
	for i, loc := range p.colorLoc {
		if loc != -1 {
			r, g, b := pal.RGB(i)
			gl.Uniform3f(loc, r, g, b)
		}
	}
	if p.angleLoc != -1 {
		gl.Uniform1f(p.angleLoc, s.Angle)
	}
	if p.scaleLoc != -1 {
		gl.Uniform1f(p.scaleLoc, s.Scale)
	}
	if p.speedLoc != -1 {
		gl.Uniform1f(p.speedLoc, s.Speed)
	}
	if p.centerLoc != -1 {
		gl.Uniform1f(p.centerLoc, s.Center)
	}
	if p.blendLoc != -1 {
		gl.Uniform1f(p.blendLoc, s.Blend)
	}
	if p.distortTypeLoc != -1 {
		gl.Uniform1i(p.distortTypeLoc, int32(s.Distort))
	}
	if p.distortStrengthLoc != -1 {
		gl.Uniform1f(p.distortStrengthLoc, s.DistortStrength)
	}
	if p.rippleFreqLoc != -1 {
		gl.Uniform1f(p.rippleFreqLoc, s.RippleFreq)
	}
	if p.lightingTypeLoc != -1 {
		gl.Uniform1i(p.lightingTypeLoc, int32(s.Lighting))
	}
	if p.lightStrengthLoc != -1 {
		gl.Uniform1f(p.lightStrengthLoc, s.LightStrength)
	}
	if p.bevelWidthLoc != -1 {
		gl.Uniform1f(p.bevelWidthLoc, s.BevelWidth)
	}
	if p.lightAngleLoc != -1 {
		gl.Uniform1f(p.lightAngleLoc, s.LightAngle)
	}
	if p.noiseLoc != -1 {
		gl.Uniform1f(p.noiseLoc, s.Noise)
	}
	if p.ditherLoc != -1 {
		gl.Uniform1i(p.ditherLoc, boolUniform(s.Dither))
	}
}

func (p *patternPass) destroy() {
	gl.DeleteProgram(p.program)
}

func boolUniform(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
