package preset

import "math"

// Degrees converts a UI angle in degrees to the radians the state stores.
func Degrees(deg float32) float32 {
	return deg * math.Pi / 180
}

// State holds every per-frame parameter the renderer reads. All fields have
// usable zero-adjacent defaults (see NewState) so any subset of edits still
// yields a renderable state. Fields are written directly; the renderer reads
// the whole struct once per frame.
type State struct {
	Kind PatternKind

	// Geometry controls. Which of these the active pattern actually reads
	// is declared by its Descriptor; the rest are uploaded anyway and
	// ignored by the shader.
	Angle  float32 // radians
	Scale  float32
	Speed  float32 // time-scrub value, labeled "Time" for animated patterns
	Center float32 // [-1,1], Circle horizontal offset

	// Time is the host clock in seconds. It is uploaded every frame but no
	// current pattern reads it; Speed carries the scrub instead.
	Time float32

	// Blend widens the palette band transitions, [0,1].
	Blend float32

	Distort         DistortKind
	DistortStrength float32
	RippleFreq      float32

	Lighting      LightingKind
	LightStrength float32
	BevelWidth    float32
	LightAngle    float32 // radians, 0 = light from top

	Noise  float32 // [-1,1], signed grain
	Dither bool

	Blur       BlurKind
	BlurAmount float32
	BlurAngle  float32 // radians

	Bloom          bool
	BloomThreshold float32
	BloomIntensity float32

	Chroma         bool
	ChromaStrength float32
	ChromaAngle    float32 // radians
}

// NewState returns a state with the global defaults applied and the given
// pattern selected.
func NewState(kind PatternKind) State {
	s := State{
		Blend:      0.5,
		RippleFreq: 15,
		BevelWidth: 0.05,
		LightAngle: Degrees(45),

		BloomThreshold: 0.7,
		BloomIntensity: 0.8,
	}
	s.SelectPattern(kind)
	return s
}

// SelectPattern switches the active pattern and resets the geometry controls
// to the pattern's descriptor defaults. Distortion, lighting, grain, dither
// and the post-processing toggles are deliberately left alone so they carry
// across pattern switches.
func (s *State) SelectPattern(kind PatternKind) {
	d := Describe(kind)
	s.Kind = d.Kind
	s.Angle = Degrees(d.Angle.Default)
	s.Scale = d.Scale.Default
	s.Speed = d.Speed.Default
	s.Center = d.Center.Default
}
