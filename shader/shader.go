package shader

import (
	"wallrus/preset"
)

// ────────────────────────────────── Vertex ──────────────────────────────────

// VertexSource is the shared fullscreen-quad passthrough shader. Every
// program in the pipeline uses it; fragment shaders derive their coordinates
// from gl_FragCoord instead of a varying.
const VertexSource = `#version 330 core
layout(location = 0) in vec2 aPos;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

// ───────────────────────────── Fragment assembly ────────────────────────────

const versionHeader = "#version 330 core\n"

// uniformBlock is the full uniform contract shared by every pattern shader.
// Each pattern reads only a subset; the compiler strips the rest, so their
// locations resolve to -1 and the uploads become silent no-ops.
const uniformBlock = `
uniform vec3  iResolution;
uniform float iTime;

uniform vec3  uColor1;
uniform vec3  uColor2;
uniform vec3  uColor3;
uniform vec3  uColor4;

uniform float uAngle;
uniform float uScale;
uniform float uSpeed;
uniform float uCenter;
uniform float uBlend;

uniform int   uDistortType;
uniform float uDistortStrength;
uniform float uRippleFreq;

uniform int   uLightingType;
uniform float uLightStrength;
uniform float uBevelWidth;
uniform float uLightAngle;

uniform float uNoise;
uniform int   uDither;
`

// FragmentSource assembles the complete fragment shader for a pattern:
// version header, uniform contract, shared shading library, then the pattern
// body with its main().
func FragmentSource(kind preset.PatternKind) string {
	return versionHeader + uniformBlock + libraryGLSL + patternBody(kind)
}

func patternBody(kind preset.PatternKind) string {
	switch kind {
	case preset.Circle:
		return circleBody
	case preset.Plasma:
		return plasmaBody
	case preset.Waves:
		return wavesBody
	case preset.Terrain:
		return terrainBody
	default:
		return barsBody
	}
}
