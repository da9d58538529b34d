package shader

// Pattern bodies. Each produces a scalar t in [0,1], resolves it through the
// palette and runs the common tail of the pipeline. The bodies read only the
// uniforms their descriptor declares.

const barsBody = `
void main() {
    vec2 uv = distortUV(gl_FragCoord.xy / iResolution.xy);

    // Linear ramp along the band direction.
    vec2 dir = vec2(cos(uAngle), sin(uAngle));
    float t = dot(uv - 0.5, dir) + 0.5;
    t = clamp(t, 0.0, 1.0);

    vec3 color = paletteColor(t);
    color = applyLighting(color, t, uv);
    color = applyGrain(color, gl_FragCoord.xy);
    color = applyDither(color, gl_FragCoord.xy);
    fragColor = vec4(color, 1.0);
}
`

const circleBody = `
void main() {
    vec2 uv = distortUV(gl_FragCoord.xy / iResolution.xy);

    // uCenter shifts the ring center horizontally by up to 0.4 of the frame.
    vec2 center = vec2(0.5 + uCenter * 0.4, 0.5);
    float t = clamp(length(uv - center) * uScale, 0.0, 1.0);

    vec3 color = paletteColor(t);
    color = applyLighting(color, t, uv);
    color = applyGrain(color, gl_FragCoord.xy);
    color = applyDither(color, gl_FragCoord.xy);
    fragColor = vec4(color, 1.0);
}
`

const plasmaBody = `
void main() {
    vec2 uv = distortUV(gl_FragCoord.xy / iResolution.xy);
    float time = uSpeed;
    vec2 p = (uv - 0.5) * uScale * 10.0;

    float v = sin(p.x + time);
    v += sin((p.y + time) * 0.5);
    v += sin((p.x + p.y + time) * 0.5);

    // Radial term around a slowly wandering sub-center.
    float cx = p.x + 0.5 * sin(time * 0.33);
    float cy = p.y + 0.5 * cos(time * 0.5);
    v += sin(sqrt(cx * cx + cy * cy + 1.0) + time);

    v *= 0.5;
    float t = sin(v * 3.14159) * 0.5 + 0.5;

    vec3 color = paletteColor(t);
    color = applyLighting(color, t, uv);
    color = applyGrain(color, gl_FragCoord.xy);
    color = applyDither(color, gl_FragCoord.xy);
    fragColor = vec4(color, 1.0);
}
`

const wavesBody = `
void main() {
    vec2 uv = distortUV(gl_FragCoord.xy / iResolution.xy);
    float time = uSpeed;

    vec2 c = uv - 0.5;
    float ca = cos(uAngle);
    float sa = sin(uAngle);
    vec2 ruv = vec2(ca * c.x - sa * c.y, sa * c.x + ca * c.y) + 0.5;

    float wave = sin(ruv.x * uScale * 20.0 + time * 2.0) * 0.25;
    wave += sin(ruv.x * uScale * 10.0 - time * 1.5 + ruv.y * 5.0) * 0.25;
    wave += sin(ruv.y * uScale * 15.0 + time) * 0.15;
    // The radial ripple is measured from the unrotated frame center.
    wave += sin(length(c) * uScale * 15.0 - time * 2.0) * 0.2;

    float t = clamp(ruv.y + wave, 0.0, 1.0);
    t = t * t * (3.0 - 2.0 * t);

    vec3 color = paletteColor(t);
    color = applyLighting(color, t, uv);
    color = applyGrain(color, gl_FragCoord.xy);
    color = applyDither(color, gl_FragCoord.xy);
    fragColor = vec4(color, 1.0);
}
`

const terrainBody = `
vec2 gradDir(vec2 p) {
    p = vec2(dot(p, vec2(127.1, 311.7)),
             dot(p, vec2(269.5, 183.3)));
    return -1.0 + 2.0 * fract(sin(p) * 43758.5453123);
}

// Single octave of quintic-faded gradient noise, remapped to [0,1].
float gnoise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    vec2 u = f * f * f * (f * (f * 6.0 - 15.0) + 10.0);

    float a = dot(gradDir(i), f);
    float b = dot(gradDir(i + vec2(1.0, 0.0)), f - vec2(1.0, 0.0));
    float c = dot(gradDir(i + vec2(0.0, 1.0)), f - vec2(0.0, 1.0));
    float d = dot(gradDir(i + vec2(1.0, 1.0)), f - vec2(1.0, 1.0));

    return mix(mix(a, b, u.x), mix(c, d, u.x), u.y) * 0.5 + 0.5;
}

void main() {
    vec2 uv = distortUV(gl_FragCoord.xy / iResolution.xy);
    vec2 p = (uv - 0.5) * uScale * 2.0 + vec2(uSpeed * 1.7, uSpeed * 1.3);

    float h = gnoise(p);
    // Raw noise clusters midrange; stretch it across the whole palette.
    float t = clamp((h - 0.15) * 1.4, 0.0, 1.0);
    // Smooth twice for rounder contours.
    t = t * t * (3.0 - 2.0 * t);
    t = t * t * (3.0 - 2.0 * t);

    vec3 color = paletteColor(t);
    color = applyLighting(color, t, uv);
    color = applyGrain(color, gl_FragCoord.xy);
    color = applyDither(color, gl_FragCoord.xy);
    fragColor = vec4(color, 1.0);
}
`
