package options

import (
	"fmt"

	"wallrus/preset"
)

// State builds the initial render state: pattern descriptor defaults first,
// then every explicitly given flag on top. given reports whether a flag was
// present on the command line, so untouched geometry flags never clobber a
// pattern's own defaults.
func (o *Options) State(given func(name string) bool) (preset.State, error) {
	kind, err := preset.ParsePattern(*o.Pattern)
	if err != nil {
		return preset.State{}, err
	}
	s := preset.NewState(kind)

	if given("angle") {
		s.Angle = preset.Degrees(float32(*o.Angle))
	}
	if given("scale") {
		s.Scale = float32(*o.Scale)
	}
	if given("speed") {
		s.Speed = float32(*o.Speed)
	}
	if given("time") {
		s.Time = float32(*o.Time)
	}
	if given("center") {
		s.Center = float32(*o.Center)
	}
	if given("blend") {
		s.Blend = float32(*o.Blend)
	}

	if s.Distort, err = preset.ParseDistort(*o.Distort); err != nil {
		return preset.State{}, err
	}
	s.DistortStrength = float32(*o.DistortStrength)
	s.RippleFreq = float32(*o.RippleFreq)

	if s.Lighting, err = preset.ParseLighting(*o.Lighting); err != nil {
		return preset.State{}, err
	}
	s.LightStrength = float32(*o.LightStrength)
	s.BevelWidth = float32(*o.BevelWidth)
	if given("light-angle") {
		s.LightAngle = preset.Degrees(float32(*o.LightAngle))
	}

	s.Noise = float32(*o.Noise)
	s.Dither = *o.Dither

	if s.Blur, err = preset.ParseBlur(*o.Blur); err != nil {
		return preset.State{}, err
	}
	s.BlurAmount = float32(*o.BlurAmount)
	s.BlurAngle = preset.Degrees(float32(*o.BlurAngle))

	s.Bloom = *o.Bloom
	s.BloomThreshold = float32(*o.BloomThreshold)
	s.BloomIntensity = float32(*o.BloomIntensity)

	s.Chroma = *o.Chroma
	s.ChromaStrength = float32(*o.ChromaStrength)
	s.ChromaAngle = preset.Degrees(float32(*o.ChromaAngle))

	if *o.Blend < 0 || *o.Blend > 1 {
		return preset.State{}, fmt.Errorf("blend must be within 0..1, got %v", *o.Blend)
	}
	return s, nil
}
