package renderer

import (
	"fmt"
	"log"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"wallrus/glfwcontext"
	"wallrus/palette"
	"wallrus/preset"
	"wallrus/shader"
)

// gl.Init must run exactly once per process.
var glInitOnce sync.Once

// Renderer owns the GL context, the compiled pattern and post programs and
// the offscreen targets. All methods must run on the thread that created it.
type Renderer struct {
	context *glfwcontext.Context

	quadVAO uint32
	quadVBO uint32

	passes map[preset.PatternKind]*patternPass
	active *patternPass

	blurPass   *postPass
	bloomPass  *postPass
	chromaPass *postPass
	blitPass   *postPass

	scene   *target
	scratch *target

	width       int
	height      int
	interactive bool
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// New creates the window, the fullscreen quad and the post programs shared
// by every pattern. Pattern programs themselves are compiled by Configure.
// An invisible window is used for headless export runs.
func New(width, height int, visible bool, title string) (*Renderer, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}

	r := &Renderer{
		width:       width,
		height:      height,
		interactive: visible,
		passes:      make(map[preset.PatternKind]*patternPass),
	}

	var err error
	r.context, err = glfwcontext.New(width, height, visible, title)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if r.blurPass, err = newPostPass(shader.BlurSource); err != nil {
		return nil, fmt.Errorf("blur pass: %w", err)
	}
	if r.bloomPass, err = newPostPass(shader.BloomSource); err != nil {
		return nil, fmt.Errorf("bloom pass: %w", err)
	}
	if r.chromaPass, err = newPostPass(shader.ChromaSource); err != nil {
		return nil, fmt.Errorf("chroma pass: %w", err)
	}
	if r.blitPass, err = newPostPass(shader.BlitSource); err != nil {
		return nil, fmt.Errorf("blit pass: %w", err)
	}

	if r.scene, err = newTarget(width, height); err != nil {
		return nil, err
	}
	if r.scratch, err = newTarget(width, height); err != nil {
		return nil, err
	}

	return r, nil
}

// Configure compiles (or reuses) the program for a pattern and sets the
// viewport for subsequent Render calls. A BuildError is fatal for the
// pattern; it is never papered over by substituting another program.
func (r *Renderer) Configure(kind preset.PatternKind, width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	pass, err := r.ensurePass(kind)
	if err != nil {
		return err
	}
	r.active = pass
	r.width = width
	r.height = height
	r.scene.resize(width, height)
	r.scratch.resize(width, height)
	return nil
}

func (r *Renderer) ensurePass(kind preset.PatternKind) (*patternPass, error) {
	if pass, ok := r.passes[kind]; ok {
		return pass, nil
	}
	pass, err := newPatternPass(kind)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", kind, err)
	}
	r.passes[kind] = pass
	return pass, nil
}

// Render draws one frame with the configured pattern and presents it. Every
// state field is uploaded; the ones the pattern does not consume land on -1
// locations and are skipped. In interactive mode the viewport follows the
// window framebuffer so resizes just work.
func (r *Renderer) Render(s preset.State, pal palette.Palette) error {
	if r.active == nil {
		return fmt.Errorf("render before Configure")
	}

	if r.interactive {
		fbWidth, fbHeight := r.context.GetFramebufferSize()
		if fbWidth > 0 && fbHeight > 0 && (fbWidth != r.width || fbHeight != r.height) {
			r.width, r.height = fbWidth, fbHeight
			r.scene.resize(fbWidth, fbHeight)
			r.scratch.resize(fbWidth, fbHeight)
		}
	}

	r.drawPattern(r.active, s, pal, r.scene)
	final := r.runPost(s, r.scene, r.scratch)
	r.present(final)
	return nil
}

func (r *Renderer) drawPattern(pass *patternPass, s preset.State, pal palette.Palette, dst *target) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, dst.fbo)
	pass.upload(s, pal, dst.width, dst.height)
	gl.Viewport(0, 0, int32(dst.width), int32(dst.height))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// present blits a target onto the window framebuffer.
func (r *Renderer) present(final *target) {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.blitPass.program)
	if r.blitPass.resolutionLoc != -1 {
		gl.Uniform3f(r.blitPass.resolutionLoc, float32(fbWidth), float32(fbHeight), 1)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, final.texture)
	if r.blitPass.textureLoc != -1 {
		gl.Uniform1i(r.blitPass.textureLoc, 0)
	}
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Run drives the interactive loop until the window closes. frame is called
// once per iteration with the seconds elapsed since the loop began; it is
// expected to call Render.
func (r *Renderer) Run(frame func(now float64)) {
	start := r.context.Time()
	for !r.context.ShouldClose() {
		frame(r.context.Time() - start)
		r.context.EndFrame()
	}
}

// Context exposes the window wrapper for key bindings and title updates.
func (r *Renderer) Context() *glfwcontext.Context {
	return r.context
}

// Destroy frees every GL object and the window.
func (r *Renderer) Destroy() {
	for _, pass := range r.passes {
		pass.destroy()
	}
	r.blurPass.destroy()
	r.bloomPass.destroy()
	r.chromaPass.destroy()
	r.blitPass.destroy()
	r.scene.destroy()
	r.scratch.destroy()
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	r.context.Shutdown()
}

func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return 0, &BuildError{Stage: "link", Log: strings.TrimRight(infoLog, "\x00")}
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(sh)
		return 0, &BuildError{Stage: stage, Log: strings.TrimRight(infoLog, "\x00")}
	}
	return sh, nil
}
