package shader

// Post-processing passes. Each source is self-contained: the passes sample
// the previous stage from uTexture and run over the same fullscreen quad as
// the patterns.

// BlurSource blurs the scene texture. uBlurMode selects the shape: 1 uniform
// disc, 2 tilt-shift band, 3 radial pull toward the center, 4 vignette disc,
// 5 directional streak. uBlurAmount in [0,1] maps to a ~12 px base radius.
const BlurSource = `#version 330 core
uniform sampler2D uTexture;
uniform vec3  iResolution;
uniform int   uBlurMode;
uniform float uBlurAmount;
uniform float uBlurAngle;

out vec4 fragColor;

vec3 discBlur(vec2 uv, float radius) {
    if (radius < 0.01) return texture(uTexture, uv).rgb;
    vec2 px = (radius * 0.5) / iResolution.xy;
    vec3 acc = vec3(0.0);
    float wsum = 0.0;
    for (int x = -2; x <= 2; x++) {
        for (int y = -2; y <= 2; y++) {
            vec2 o = vec2(float(x), float(y));
            float w = exp(-0.4 * dot(o, o));
            acc += texture(uTexture, uv + o * px).rgb * w;
            wsum += w;
        }
    }
    return acc / wsum;
}

vec3 lineBlur(vec2 uv, vec2 dir, float radius) {
    if (radius < 0.01) return texture(uTexture, uv).rgb;
    vec2 px = dir * radius / iResolution.xy;
    vec3 acc = vec3(0.0);
    float wsum = 0.0;
    for (int s = -6; s <= 6; s++) {
        float f = float(s) / 6.0;
        float w = exp(-2.0 * f * f);
        acc += texture(uTexture, uv + px * f).rgb * w;
        wsum += w;
    }
    return acc / wsum;
}

vec3 radialBlur(vec2 uv) {
    // Displacement grows with distance from the center.
    vec2 toC = 0.5 - uv;
    vec3 acc = texture(uTexture, uv).rgb;
    float wsum = 1.0;
    for (int s = 1; s <= 8; s++) {
        float f = float(s) / 8.0;
        float w = 1.0 - 0.5 * f;
        acc += texture(uTexture, uv + toC * f * uBlurAmount * 0.3).rgb * w;
        wsum += w;
    }
    return acc / wsum;
}

void main() {
    vec2 uv = gl_FragCoord.xy / iResolution.xy;
    float radius = uBlurAmount * 12.0;
    vec3 color;
    if (uBlurMode == 1) {
        color = discBlur(uv, radius);
    } else if (uBlurMode == 2) {
        // Sharp band through the center, blur growing away from it.
        vec2 n = vec2(-sin(uBlurAngle), cos(uBlurAngle));
        float d = abs(dot(uv - 0.5, n));
        color = discBlur(uv, radius * smoothstep(0.05, 0.4, d));
    } else if (uBlurMode == 3) {
        color = radialBlur(uv);
    } else if (uBlurMode == 4) {
        float d = length(uv - 0.5);
        color = discBlur(uv, radius * smoothstep(0.1, 0.7, d));
    } else if (uBlurMode == 5) {
        vec2 dir = vec2(cos(uBlurAngle), sin(uBlurAngle));
        color = lineBlur(uv, dir, radius * 2.0);
    } else {
        color = texture(uTexture, uv).rgb;
    }
    fragColor = vec4(color, 1.0);
}
`

// BloomSource lifts pixels above a luminance threshold, spreads them with a
// wide Gaussian gather and adds the glow back onto the scene.
const BloomSource = `#version 330 core
uniform sampler2D uTexture;
uniform vec3  iResolution;
uniform float uBloomThreshold;
uniform float uBloomIntensity;

out vec4 fragColor;

vec3 bright(vec2 uv) {
    vec3 c = texture(uTexture, uv).rgb;
    float lum = dot(c, vec3(0.2126, 0.7152, 0.0722));
    float knee = uBloomThreshold * 0.5;
    return c * smoothstep(uBloomThreshold - knee, uBloomThreshold + knee, lum);
}

void main() {
    vec2 uv = gl_FragCoord.xy / iResolution.xy;
    vec2 px = 3.0 / iResolution.xy;
    vec3 glow = vec3(0.0);
    float wsum = 0.0;
    for (int x = -3; x <= 3; x++) {
        for (int y = -3; y <= 3; y++) {
            vec2 o = vec2(float(x), float(y));
            float w = exp(-0.3 * dot(o, o));
            glow += bright(uv + o * px) * w;
            wsum += w;
        }
    }
    glow /= wsum;
    vec3 scene = texture(uTexture, uv).rgb;
    fragColor = vec4(scene + glow * uBloomIntensity, 1.0);
}
`

// ChromaSource shifts the red and blue channels in opposite directions along
// uChromaAngle. Displacement is capped at 20 px regardless of resolution.
const ChromaSource = `#version 330 core
uniform sampler2D uTexture;
uniform vec3  iResolution;
uniform float uChromaStrength;
uniform float uChromaAngle;

out vec4 fragColor;

void main() {
    vec2 uv = gl_FragCoord.xy / iResolution.xy;
    vec2 dir = vec2(cos(uChromaAngle), sin(uChromaAngle));
    vec2 off = dir * uChromaStrength * 20.0 / iResolution.xy;
    float r = texture(uTexture, uv + off).r;
    float g = texture(uTexture, uv).g;
    float b = texture(uTexture, uv - off).b;
    fragColor = vec4(r, g, b, 1.0);
}
`

// BlitSource copies a texture to the bound framebuffer.
const BlitSource = `#version 330 core
uniform sampler2D uTexture;
uniform vec3 iResolution;

out vec4 fragColor;

void main() {
    fragColor = texture(uTexture, gl_FragCoord.xy / iResolution.xy);
}
`
