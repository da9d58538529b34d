package preset

import (
	"fmt"
	"strings"
)

// PatternKind identifies one of the built-in pattern generators.
type PatternKind int

const (
	Bars PatternKind = iota
	Circle
	Plasma
	Waves
	Terrain
)

var patternNames = [...]string{"Bars", "Circle", "Plasma", "Waves", "Terrain"}

func (k PatternKind) String() string {
	if k < 0 || int(k) >= len(patternNames) {
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
	return patternNames[k]
}

// Kinds returns all pattern kinds in display order.
func Kinds() []PatternKind {
	return []PatternKind{Bars, Circle, Plasma, Waves, Terrain}
}

// ParsePattern resolves a pattern name case-insensitively.
func ParsePattern(name string) (PatternKind, error) {
	for i, n := range patternNames {
		if strings.EqualFold(name, n) {
			return PatternKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pattern: %q", name)
}

// DistortKind selects the UV remap applied before pattern evaluation.
// The numeric values are uploaded directly as the uDistortType uniform.
type DistortKind int

const (
	DistortNone DistortKind = iota
	DistortSwirl
	DistortRipple
	DistortFisheye
)

var distortNames = [...]string{"none", "swirl", "ripple", "fisheye"}

func (k DistortKind) String() string {
	if k < 0 || int(k) >= len(distortNames) {
		return fmt.Sprintf("DistortKind(%d)", int(k))
	}
	return distortNames[k]
}

// ParseDistort resolves a distortion name case-insensitively.
func ParseDistort(name string) (DistortKind, error) {
	for i, n := range distortNames {
		if strings.EqualFold(name, n) {
			return DistortKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown distortion: %q", name)
}

// LightingKind selects the shading applied after palette resolution.
// The numeric values are uploaded directly as the uLightingType uniform.
type LightingKind int

const (
	LightNone LightingKind = iota
	LightBevel
	LightGradient
	LightVignette
)

var lightingNames = [...]string{"none", "bevel", "gradient", "vignette"}

func (k LightingKind) String() string {
	if k < 0 || int(k) >= len(lightingNames) {
		return fmt.Sprintf("LightingKind(%d)", int(k))
	}
	return lightingNames[k]
}

// ParseLighting resolves a lighting name case-insensitively.
func ParseLighting(name string) (LightingKind, error) {
	for i, n := range lightingNames {
		if strings.EqualFold(name, n) {
			return LightingKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lighting: %q", name)
}

// BlurKind selects the blur post-process mode.
// The numeric values are uploaded directly as the uBlurMode uniform.
type BlurKind int

const (
	BlurNone BlurKind = iota
	BlurGaussian
	BlurTiltShift
	BlurRadial
	BlurVignette
	BlurDirectional
)

var blurNames = [...]string{"none", "gaussian", "tiltshift", "radial", "vignette", "directional"}

func (k BlurKind) String() string {
	if k < 0 || int(k) >= len(blurNames) {
		return fmt.Sprintf("BlurKind(%d)", int(k))
	}
	return blurNames[k]
}

// ParseBlur resolves a blur mode name case-insensitively.
func ParseBlur(name string) (BlurKind, error) {
	for i, n := range blurNames {
		if strings.EqualFold(name, n) {
			return BlurKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown blur mode: %q", name)
}

// Control describes the range of one slider-style parameter. The values are
// advisory metadata for the control surface; the renderer itself does not
// clamp.
type Control struct {
	Label   string
	Min     float32
	Max     float32
	Step    float32
	Default float32
}

// Descriptor is the static per-pattern metadata: which optional controls the
// pattern consumes and their ranges and defaults. Angle controls are in
// degrees (the state stores radians).
type Descriptor struct {
	Kind  PatternKind
	Label string

	HasAngle  bool
	HasScale  bool
	HasSpeed  bool
	HasCenter bool

	Angle  Control
	Scale  Control
	Speed  Control
	Center Control
}

var (
	angleControl  = Control{Label: "Angle", Min: 0, Max: 360, Step: 1, Default: 45}
	centerControl = Control{Label: "Center", Min: -1, Max: 1, Step: 0.05, Default: 0}
	speedControl  = Control{Label: "Speed", Min: 0, Max: 3, Step: 0.1, Default: 1}
	timeControl   = Control{Label: "Time", Min: 0, Max: 20, Step: 0.1, Default: 0}
	scaleControl  = Control{Label: "Scale", Min: 0.1, Max: 5, Step: 0.1, Default: 1}
)

var descriptors = [...]Descriptor{
	{
		Kind:     Bars,
		Label:    "Bars",
		HasAngle: true,
		Angle:    angleControl,
		Scale:    scaleControl,
		Speed:    speedControl,
		Center:   centerControl,
	},
	{
		Kind:      Circle,
		Label:     "Circle",
		HasScale:  true,
		HasCenter: true,
		Angle:     angleControl,
		Scale:     Control{Label: "Scale", Min: 0.5, Max: 3, Step: 0.1, Default: 1},
		Speed:     timeControl,
		Center:    centerControl,
	},
	{
		Kind:     Plasma,
		Label:    "Plasma",
		HasScale: true,
		HasSpeed: true,
		Angle:    angleControl,
		Scale:    scaleControl,
		Speed:    timeControl,
		Center:   centerControl,
	},
	{
		Kind:     Waves,
		Label:    "Waves",
		HasAngle: true,
		HasScale: true,
		HasSpeed: true,
		Angle:    angleControl,
		Scale:    scaleControl,
		Speed:    timeControl,
		Center:   centerControl,
	},
	{
		Kind:     Terrain,
		Label:    "Terrain",
		HasScale: true,
		HasSpeed: true,
		Angle:    angleControl,
		Scale:    Control{Label: "Scale", Min: 0.1, Max: 2, Step: 0.01, Default: 0.5},
		Speed:    timeControl,
		Center:   centerControl,
	},
}

// Describe returns the descriptor for a pattern kind.
func Describe(kind PatternKind) Descriptor {
	for _, d := range descriptors {
		if d.Kind == kind {
			return d
		}
	}
	// Unknown kinds fall back to the Bars descriptor, mirroring the
	// default arm of the original control table.
	return descriptors[0]
}

// Descriptors returns all pattern descriptors in display order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors[:])
	return out
}
