package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"wallrus/export"
	"wallrus/glfwcontext"
	"wallrus/options"
	"wallrus/palette"
	"wallrus/preset"
	"wallrus/renderer"
	"wallrus/wallpaper"
)

func init() {
	// The GL context and GLFW event handling are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })

	state, err := opts.State(func(name string) bool { return given[name] })
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	pal, err := resolvePalette(opts)
	if err != nil {
		log.Fatalf("Failed to resolve palette: %v", err)
	}

	format, err := export.ParseFormat(*opts.Format)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	res, err := export.ParseResolution(*opts.Res)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	if *opts.Headless {
		if err := runHeadless(opts, state, pal, res, format); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	if err := runInteractive(opts, state, pal, res, format); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}

// resolvePalette picks the startup palette: an explicit hex list wins, then
// a swatch image, then the built-in default.
func resolvePalette(opts *options.Options) (palette.Palette, error) {
	if *opts.Palette != "" {
		parts := strings.Split(*opts.Palette, ",")
		if len(parts) != 4 {
			return palette.Palette{}, fmt.Errorf("-palette wants 4 comma separated colors, got %d", len(parts))
		}
		var hex [4]string
		copy(hex[:], parts)
		return palette.FromHex("cli", hex)
	}
	if *opts.PaletteImage != "" {
		return palette.LoadFile(*opts.PaletteImage)
	}
	return palette.Default(), nil
}

// exportSize resolves a resolution preset to pixels. "Display" defers to the
// primary monitor's current video mode.
func exportSize(res export.Resolution) (int, int, error) {
	if !res.IsDisplay() {
		return res.Width, res.Height, nil
	}
	w, h, err := glfwcontext.PrimaryMonitorSize()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resolve display resolution: %w", err)
	}
	return w, h, nil
}

// exportPath is where a saved still goes when -out is not given.
func exportPath(opts *options.Options, kind preset.PatternKind, format export.Format) string {
	if *opts.Out != "" {
		return *opts.Out
	}
	return filepath.Join(export.DefaultDir(), export.Filename(kind, format, time.Now()))
}

// runHeadless renders one frame offscreen at the export resolution, writes
// it and optionally sets it as the wallpaper.
func runHeadless(opts *options.Options, state preset.State, pal palette.Palette, res export.Resolution, format export.Format) error {
	r, err := renderer.New(64, 64, false, "wallrus")
	if err != nil {
		return err
	}
	defer r.Destroy()

	w, h, err := exportSize(res)
	if err != nil {
		return err
	}

	img, err := r.RenderToBuffer(state, pal, w, h)
	if err != nil {
		return err
	}

	path := exportPath(opts, state.Kind, format)
	if err := export.Save(img, path); err != nil {
		return err
	}
	log.Printf("Exported %s %dx%d to %s", state.Kind, w, h, path)

	if *opts.Wallpaper {
		wctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		staged, err := wallpaper.Apply(wctx, img)
		if err != nil {
			return fmt.Errorf("failed to set wallpaper: %w", err)
		}
		log.Printf("Wallpaper set from %s", staged)
	}
	return nil
}

// session is the interactive control surface: the live state, the current
// palette and the cursor into the discovered palette library.
type session struct {
	r    *renderer.Renderer
	opts *options.Options

	state preset.State
	pal   palette.Palette

	entries  []palette.Entry
	cats     []string
	entryIdx int

	res    export.Resolution
	format export.Format

	animate  bool
	lastTime float64
	rng      *rand.Rand
}

func runInteractive(opts *options.Options, state preset.State, pal palette.Palette, res export.Resolution, format export.Format) error {
	r, err := renderer.New(*opts.Width, *opts.Height, true, "wallrus")
	if err != nil {
		return err
	}
	defer r.Destroy()

	if err := r.Configure(state.Kind, *opts.Width, *opts.Height); err != nil {
		return err
	}

	s := &session{
		r:      r,
		opts:   opts,
		state:  state,
		pal:    pal,
		res:    res,
		format: format,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.loadPalettes()
	s.bindKeys()
	s.updateTitle()

	r.Run(func(now float64) {
		dt := now - s.lastTime
		s.lastTime = now
		s.state.Time = float32(now)
		if s.animate && preset.Describe(s.state.Kind).HasSpeed {
			s.state.Speed += float32(dt)
		}
		if err := r.Render(s.state, s.pal); err != nil {
			log.Printf("Render failed: %v", err)
		}
	})
	return nil
}

func (s *session) loadPalettes() {
	dirs := []string{*s.opts.PaletteDir}
	if userDir, err := palette.UserDir(); err == nil {
		dirs = append(dirs, userDir)
	} else {
		log.Printf("Warning: no user palette directory: %v", err)
	}
	s.entries = palette.Discover(dirs...)

	seen := make(map[string]bool)
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			s.cats = append(s.cats, e.Category)
		}
	}
	log.Printf("Found %d palettes in %d categories", len(s.entries), len(s.cats))
}

func (s *session) updateTitle() {
	s.r.Context().SetTitle("wallrus - " + s.state.Kind.String())
}

func (s *session) selectPattern(kind preset.PatternKind) {
	s.state.SelectPattern(kind)
	w, h := s.r.Context().GetFramebufferSize()
	if err := s.r.Configure(kind, w, h); err != nil {
		// A pattern that fails to build stays broken; never swap in another.
		log.Fatalf("Failed to build pattern %s: %v", kind, err)
	}
	log.Printf("Pattern: %s", kind)
	s.updateTitle()
}

// categoryBounds returns the half-open entry range of a category. Entries
// are sorted by category, so each one is a contiguous block.
func (s *session) categoryBounds(cat string) (int, int) {
	lo := -1
	for i, e := range s.entries {
		if e.Category == cat {
			if lo < 0 {
				lo = i
			}
		} else if lo >= 0 {
			return lo, i
		}
	}
	return lo, len(s.entries)
}

func (s *session) usePalette() {
	e := s.entries[s.entryIdx]
	s.pal = e.Palette
	log.Printf("Palette: %s (%s)", e.Palette.Name, e.Category)
}

func (s *session) cyclePalette(step int) {
	if len(s.entries) == 0 {
		log.Printf("No palette images found; drop swatches in the palette directory or press R")
		return
	}
	lo, hi := s.categoryBounds(s.entries[s.entryIdx].Category)
	n := hi - lo
	s.entryIdx = lo + ((s.entryIdx-lo+step)%n+n)%n
	s.usePalette()
}

func (s *session) cycleCategory(step int) {
	if len(s.entries) == 0 {
		log.Printf("No palette images found; drop swatches in the palette directory or press R")
		return
	}
	cur := 0
	for i, c := range s.cats {
		if c == s.entries[s.entryIdx].Category {
			cur = i
			break
		}
	}
	n := len(s.cats)
	next := s.cats[((cur+step)%n+n)%n]
	s.entryIdx, _ = s.categoryBounds(next)
	s.usePalette()
}

func (s *session) export(setWall bool) {
	w, h, err := exportSize(s.res)
	if err != nil {
		log.Printf("Export failed: %v", err)
		return
	}
	img, err := s.r.RenderToBuffer(s.state, s.pal, w, h)
	if err != nil {
		log.Printf("Export failed: %v", err)
		return
	}

	path := exportPath(s.opts, s.state.Kind, s.format)
	if err := export.Save(img, path); err != nil {
		log.Printf("Export failed: %v", err)
		return
	}
	log.Printf("Exported %s %dx%d to %s", s.state.Kind, w, h, path)

	if setWall {
		wctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		staged, err := wallpaper.Apply(wctx, img)
		if err != nil {
			log.Printf("Failed to set wallpaper: %v", err)
			return
		}
		log.Printf("Wallpaper set from %s", staged)
	}
}

// nudge clamps a slider-style adjustment to a control's declared range.
func nudge(value, step, min, max float32) float32 {
	value += step
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *session) bindKeys() {
	ctx := s.r.Context()

	for i, kind := range preset.Kinds() {
		kind := kind
		ctx.RegisterKeyCallback(glfw.Key1+glfw.Key(i), func() { s.selectPattern(kind) })
	}

	ctx.RegisterKeyCallback(glfw.KeyLeftBracket, func() { s.cyclePalette(-1) })
	ctx.RegisterKeyCallback(glfw.KeyRightBracket, func() { s.cyclePalette(1) })
	ctx.RegisterShiftedKeyCallback(glfw.KeyLeftBracket, func() { s.cycleCategory(-1) })
	ctx.RegisterShiftedKeyCallback(glfw.KeyRightBracket, func() { s.cycleCategory(1) })
	ctx.RegisterKeyCallback(glfw.KeyR, func() {
		s.pal = palette.Random(s.rng)
		log.Printf("Palette: random %v", s.pal.Hex())
	})

	ctx.RegisterKeyCallback(glfw.KeyD, func() {
		s.state.Distort = (s.state.Distort + 1) % 4
		if s.state.Distort != preset.DistortNone && s.state.DistortStrength == 0 {
			// Give a fresh distortion something visible to start from.
			if s.state.Distort == preset.DistortSwirl {
				s.state.DistortStrength = 2
			} else {
				s.state.DistortStrength = 0.5
			}
		}
		log.Printf("Distortion: %s (strength %.2f)", s.state.Distort, s.state.DistortStrength)
	})
	ctx.RegisterKeyCallback(glfw.KeyL, func() {
		s.state.Lighting = (s.state.Lighting + 1) % 4
		if s.state.Lighting != preset.LightNone && s.state.LightStrength == 0 {
			s.state.LightStrength = 0.3
		}
		log.Printf("Lighting: %s (strength %.2f)", s.state.Lighting, s.state.LightStrength)
	})
	ctx.RegisterKeyCallback(glfw.KeyB, func() {
		s.state.Blur = (s.state.Blur + 1) % 6
		if s.state.Blur != preset.BlurNone && s.state.BlurAmount == 0 {
			s.state.BlurAmount = 0.5
		}
		log.Printf("Blur: %s (amount %.2f)", s.state.Blur, s.state.BlurAmount)
	})
	ctx.RegisterKeyCallback(glfw.KeyO, func() {
		s.state.Bloom = !s.state.Bloom
		log.Printf("Bloom: %v", s.state.Bloom)
	})
	ctx.RegisterKeyCallback(glfw.KeyC, func() {
		s.state.Chroma = !s.state.Chroma
		if s.state.Chroma && s.state.ChromaStrength == 0 {
			s.state.ChromaStrength = 0.4
		}
		log.Printf("Chromatic aberration: %v (strength %.2f)", s.state.Chroma, s.state.ChromaStrength)
	})
	ctx.RegisterKeyCallback(glfw.KeyG, func() {
		s.state.Dither = !s.state.Dither
		log.Printf("Dither: %v", s.state.Dither)
	})

	ctx.RegisterKeyCallback(glfw.KeyLeft, func() {
		s.state.Angle -= preset.Degrees(5)
		log.Printf("Angle: %.0f°", s.state.Angle*180/math.Pi)
	})
	ctx.RegisterKeyCallback(glfw.KeyRight, func() {
		s.state.Angle += preset.Degrees(5)
		log.Printf("Angle: %.0f°", s.state.Angle*180/math.Pi)
	})
	ctx.RegisterKeyCallback(glfw.KeyUp, func() {
		d := preset.Describe(s.state.Kind).Scale
		s.state.Scale = nudge(s.state.Scale, d.Step, d.Min, d.Max)
		log.Printf("Scale: %.2f", s.state.Scale)
	})
	ctx.RegisterKeyCallback(glfw.KeyDown, func() {
		d := preset.Describe(s.state.Kind).Scale
		s.state.Scale = nudge(s.state.Scale, -d.Step, d.Min, d.Max)
		log.Printf("Scale: %.2f", s.state.Scale)
	})

	ctx.RegisterKeyCallback(glfw.KeyComma, func() {
		s.state.Blend = nudge(s.state.Blend, -0.05, 0, 1)
		log.Printf("Blend: %.2f", s.state.Blend)
	})
	ctx.RegisterKeyCallback(glfw.KeyPeriod, func() {
		s.state.Blend = nudge(s.state.Blend, 0.05, 0, 1)
		log.Printf("Blend: %.2f", s.state.Blend)
	})

	// - and = tune whichever effect is active, distortion before lighting.
	adjustStrength := func(sign float32) {
		switch {
		case s.state.Distort != preset.DistortNone:
			s.state.DistortStrength = nudge(s.state.DistortStrength, sign*0.25, -10, 10)
			log.Printf("Distortion strength: %.2f", s.state.DistortStrength)
		case s.state.Lighting != preset.LightNone:
			s.state.LightStrength = nudge(s.state.LightStrength, sign*0.05, 0, 1)
			log.Printf("Lighting strength: %.2f", s.state.LightStrength)
		}
	}
	ctx.RegisterKeyCallback(glfw.KeyMinus, func() { adjustStrength(-1) })
	ctx.RegisterKeyCallback(glfw.KeyEqual, func() { adjustStrength(1) })

	ctx.RegisterKeyCallback(glfw.KeyN, func() {
		s.state.Noise = nudge(s.state.Noise, -0.1, -1, 1)
		log.Printf("Noise: %.2f", s.state.Noise)
	})
	ctx.RegisterKeyCallback(glfw.KeyM, func() {
		s.state.Noise = nudge(s.state.Noise, 0.1, -1, 1)
		log.Printf("Noise: %.2f", s.state.Noise)
	})

	ctx.RegisterKeyCallback(glfw.KeySpace, func() {
		s.animate = !s.animate
		log.Printf("Animate: %v (time %.2f)", s.animate, s.state.Speed)
	})

	ctx.RegisterKeyCallback(glfw.KeyE, func() { s.export(false) })
	ctx.RegisterKeyCallback(glfw.KeyW, func() { s.export(true) })
}
