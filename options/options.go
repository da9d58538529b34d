// Package options holds the parsed command line configuration.
package options

import "flag"

// Options carries every flag the wallrus binary accepts. The fields are
// pointers into the flag set; use flag.Visit on the parsed set to tell
// explicitly given values apart from defaults.
type Options struct {
	Pattern *string
	Width   *int
	Height  *int

	// Export controls.
	Res       *string
	Format    *string
	Out       *string
	Headless  *bool
	Wallpaper *bool

	// Palette sources, tried in order: hex list, image file, default.
	Palette      *string
	PaletteImage *string
	PaletteDir   *string

	// Geometry. Angles are taken in degrees and converted on apply.
	Angle  *float64
	Scale  *float64
	Speed  *float64
	Time   *float64
	Center *float64
	Blend  *float64

	Distort         *string
	DistortStrength *float64
	RippleFreq      *float64

	Lighting      *string
	LightStrength *float64
	BevelWidth    *float64
	LightAngle    *float64

	Noise  *float64
	Dither *bool

	Blur       *string
	BlurAmount *float64
	BlurAngle  *float64

	Bloom          *bool
	BloomThreshold *float64
	BloomIntensity *float64

	Chroma         *bool
	ChromaStrength *float64
	ChromaAngle    *float64
}

// Register defines every flag on fs and returns the struct the parsed
// values land in. Geometry defaults here are placeholders; the pattern's
// descriptor defaults win unless the flag was given explicitly.
func Register(fs *flag.FlagSet) *Options {
	return &Options{
		Pattern: fs.String("pattern", "bars", "pattern to render: bars, circle, plasma, waves or terrain"),
		Width:   fs.Int("w", 1280, "preview window width"),
		Height:  fs.Int("h", 720, "preview window height"),

		Res:       fs.String("res", "display", "export resolution: display, hd, qhd, 4k, phone or WxH"),
		Format:    fs.String("format", "png", "export image format: png or jpeg"),
		Out:       fs.String("out", "", "export file path (default ~/Pictures/wallrus_<pattern>_<time>.<ext>)"),
		Headless:  fs.Bool("headless", false, "render one frame offscreen, write it and exit"),
		Wallpaper: fs.Bool("wallpaper", false, "set the exported image as the desktop wallpaper"),

		Palette:      fs.String("palette", "", "four comma separated hex colors, e.g. \"#1c3fa0,#e65980,#33995c,#ccb233\""),
		PaletteImage: fs.String("palette-image", "", "palette swatch image to sample the four colors from"),
		PaletteDir:   fs.String("palette-dir", "", "extra palette directory to browse in the preview"),

		Angle:  fs.Float64("angle", 45, "pattern angle in degrees"),
		Scale:  fs.Float64("scale", 1, "pattern scale"),
		Speed:  fs.Float64("speed", 0, "time scrub value for the animated patterns"),
		Time:   fs.Float64("time", 0, "host clock seconds uploaded as iTime"),
		Center: fs.Float64("center", 0, "circle center offset, -1..1"),
		Blend:  fs.Float64("blend", 0.5, "palette band blending, 0..1"),

		Distort:         fs.String("distort", "none", "distortion: none, swirl, ripple or fisheye"),
		DistortStrength: fs.Float64("distort-strength", 0, "distortion strength"),
		RippleFreq:      fs.Float64("ripple-freq", 15, "ripple ring frequency"),

		Lighting:      fs.String("lighting", "none", "lighting: none, bevel, gradient or vignette"),
		LightStrength: fs.Float64("light-strength", 0, "lighting strength, 0..1"),
		BevelWidth:    fs.Float64("bevel-width", 0.05, "bevel groove width"),
		LightAngle:    fs.Float64("light-angle", 45, "light direction in degrees, 0 = from the top"),

		Noise:  fs.Float64("noise", 0, "grain amount, -1..1"),
		Dither: fs.Bool("dither", false, "quantize the output with ordered dithering"),

		Blur:       fs.String("blur", "none", "blur: none, gaussian, tiltshift, radial, vignette or directional"),
		BlurAmount: fs.Float64("blur-amount", 0, "blur strength, 0..1"),
		BlurAngle:  fs.Float64("blur-angle", 0, "tilt-shift band / directional blur angle in degrees"),

		Bloom:          fs.Bool("bloom", false, "add bloom glow to bright regions"),
		BloomThreshold: fs.Float64("bloom-threshold", 0.7, "bloom luminance threshold, 0..1"),
		BloomIntensity: fs.Float64("bloom-intensity", 0.8, "bloom add-back intensity, 0..2"),

		Chroma:         fs.Bool("chroma", false, "add chromatic aberration"),
		ChromaStrength: fs.Float64("chroma-strength", 0, "chromatic aberration strength, 0..1"),
		ChromaAngle:    fs.Float64("chroma-angle", 0, "chromatic aberration angle in degrees"),
	}
}
