package shader

// libraryGLSL is the shading library compiled into every pattern shader.
// The pipeline order inside each main() is fixed: distortUV first, then the
// pattern math, then paletteColor, applyLighting, applyGrain and applyDither.
const libraryGLSL = `
out vec4 fragColor;

vec2 distortUV(vec2 uv) {
    if (uDistortType == 0) return uv;
    vec2 c = uv - 0.5;
    float r = length(c);
    if (uDistortType == 1) {
        // Vortex: full twist at the center, fading out toward the edge.
        float angle = uDistortStrength * (1.0 - r);
        float ca = cos(angle);
        float sa = sin(angle);
        return vec2(ca * c.x - sa * c.y, sa * c.x + ca * c.y) + 0.5;
    }
    if (r < 0.0001) return uv;
    if (uDistortType == 2) {
        return uv + (c / r) * sin(r * uRippleFreq) * uDistortStrength * 0.05;
    }
    // Fisheye: power-law radial remap, identity at zero strength.
    float k = pow(r * 2.0, 1.0 + uDistortStrength) * 0.5;
    return (c / r) * k + 0.5;
}

vec3 paletteColor(float t) {
    t = clamp(t, 0.0, 1.0);
    float fw = uBlend * 0.25;
    float f1 = (fw > 0.0001) ? smoothstep(0.25 - fw, 0.25 + fw, t) : step(0.25, t);
    float f2 = (fw > 0.0001) ? smoothstep(0.50 - fw, 0.50 + fw, t) : step(0.50, t);
    float f3 = (fw > 0.0001) ? smoothstep(0.75 - fw, 0.75 + fw, t) : step(0.75, t);
    vec3 color = uColor1;
    color = mix(color, uColor2, f1);
    color = mix(color, uColor3, f2);
    color = mix(color, uColor4, f3);
    return color;
}

vec3 applyLighting(vec3 color, float t, vec2 uv) {
    if (uLightingType == 0) return color;
    float shade = 0.0;
    if (uLightingType == 1) {
        // Groove shading around the three palette boundaries.
        shade += 1.0 - smoothstep(0.0, 2.0 * uBevelWidth, abs(t - 0.25));
        shade -= 1.0 - smoothstep(0.0, 2.0 * uBevelWidth, abs(t - 0.50));
        shade += 1.0 - smoothstep(0.0, 2.0 * uBevelWidth, abs(t - 0.75));
    } else if (uLightingType == 2) {
        // Angle 0 lights the frame from the top.
        vec2 dir = vec2(-sin(uLightAngle), cos(uLightAngle));
        shade = dot(uv - 0.5, dir);
    } else {
        shade = -length(uv - 0.5) * 1.5;
    }
    return clamp(color + shade * uLightStrength, 0.0, 1.0);
}

float hash(vec2 p) {
    vec3 p3 = fract(vec3(p.xyx) * 0.1031);
    p3 += dot(p3, p3.yzx + 33.33);
    return fract((p3.x + p3.y) * p3.z);
}

vec3 applyGrain(vec3 color, vec2 fragCoord) {
    float n = hash(fragCoord);
    return clamp(color + n * uNoise * 0.3, 0.0, 1.0);
}

float bayer4x4(vec2 p) {
    ivec2 i = ivec2(p) & 3;
    int idx = i.x + i.y * 4;
    int b[16] = int[16](0,8,2,10,12,4,14,6,3,11,1,9,15,7,13,5);
    return float(b[idx]) / 16.0;
}

vec3 applyDither(vec3 color, vec2 fragCoord) {
    if (uDither == 0) return color;
    // Quantize to the 4 levels 0, 1/3, 2/3, 1.
    float steps = 3.0;
    float threshold = bayer4x4(fragCoord) - 0.5;
    return floor(color * steps + threshold + 0.5) / steps;
}
`
