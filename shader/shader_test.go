package shader

import (
	"strings"
	"testing"

	"wallrus/preset"
)

// Every name the host uploads. Each pattern shader must declare the full set
// so that unread uniforms stay silent no-ops instead of becoming errors.
var contractUniforms = []string{
	"iResolution",
	"iTime",
	"uColor1", "uColor2", "uColor3", "uColor4",
	"uAngle", "uScale", "uSpeed", "uCenter", "uBlend",
	"uDistortType", "uDistortStrength", "uRippleFreq",
	"uLightingType", "uLightStrength", "uBevelWidth", "uLightAngle",
	"uNoise", "uDither",
}

func TestFragmentSourceDeclaresContract(t *testing.T) {
	for _, kind := range preset.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			src := FragmentSource(kind)
			if !strings.HasPrefix(src, "#version 330 core\n") {
				t.Fatalf("source does not begin with a version directive")
			}
			for _, name := range contractUniforms {
				if !strings.Contains(src, "uniform") || !strings.Contains(src, name) {
					t.Errorf("uniform %s not declared", name)
				}
			}
			if strings.Count(src, "void main") != 1 {
				t.Errorf("expected exactly one main, got %d", strings.Count(src, "void main"))
			}
		})
	}
}

func TestFragmentSourcePipelineOrder(t *testing.T) {
	calls := []string{
		"distortUV(",
		"paletteColor(",
		"applyLighting(",
		"applyGrain(",
		"applyDither(",
		"fragColor =",
	}
	for _, kind := range preset.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			src := FragmentSource(kind)
			body := src[strings.Index(src, "void main"):]
			last := -1
			for _, call := range calls {
				idx := strings.Index(body, call)
				if idx < 0 {
					t.Fatalf("main body does not call %s", call)
				}
				if idx <= last {
					t.Fatalf("%s appears out of pipeline order", call)
				}
				last = idx
			}
		})
	}
}

func TestFragmentSourcePatternMarkers(t *testing.T) {
	tests := []struct {
		kind   preset.PatternKind
		marker string
	}{
		{preset.Bars, "cos(uAngle)"},
		{preset.Circle, "uCenter * 0.4"},
		{preset.Plasma, "uScale * 10.0"},
		{preset.Waves, "uScale * 20.0"},
		{preset.Terrain, "43758.5453123"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if !strings.Contains(FragmentSource(tt.kind), tt.marker) {
				t.Errorf("%v source missing %q", tt.kind, tt.marker)
			}
		})
	}
}

func TestFragmentSourceUnknownKindFallsBack(t *testing.T) {
	if FragmentSource(preset.PatternKind(77)) != FragmentSource(preset.Bars) {
		t.Error("unknown kind should assemble the Bars shader")
	}
}

func TestVertexSource(t *testing.T) {
	if !strings.HasPrefix(VertexSource, "#version 330 core\n") {
		t.Error("vertex source does not begin with a version directive")
	}
	if !strings.Contains(VertexSource, "aPos") {
		t.Error("vertex source missing the aPos attribute")
	}
}

func TestPostSources(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		uniforms []string
	}{
		{"blur", BlurSource, []string{"uTexture", "iResolution", "uBlurMode", "uBlurAmount", "uBlurAngle"}},
		{"bloom", BloomSource, []string{"uTexture", "iResolution", "uBloomThreshold", "uBloomIntensity"}},
		{"chroma", ChromaSource, []string{"uTexture", "iResolution", "uChromaStrength", "uChromaAngle"}},
		{"blit", BlitSource, []string{"uTexture", "iResolution"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.src, "#version 330 core\n") {
				t.Fatal("source does not begin with a version directive")
			}
			for _, u := range tt.uniforms {
				if !strings.Contains(tt.src, u) {
					t.Errorf("missing uniform %s", u)
				}
			}
			if !strings.Contains(tt.src, "void main") {
				t.Error("missing main")
			}
		})
	}
}

func TestBlurSourceDispatchesAllModes(t *testing.T) {
	for mode := 1; mode <= 5; mode++ {
		probe := "uBlurMode == " + string(rune('0'+mode))
		if !strings.Contains(BlurSource, probe) {
			t.Errorf("blur shader has no branch for mode %d", mode)
		}
	}
}
