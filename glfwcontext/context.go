package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

// Context wraps one GLFW window and its GL context. All methods must run on
// the thread that owns the context.
type Context struct {
	window *glfw.Window
	// Functions dispatched from the key callback, keyed by GLFW key.
	keyCallbacks   map[glfw.Key]func()
	shiftCallbacks map[glfw.Key]func()
}

// New creates a GLFW window with a 4.1 core profile context. Invisible
// windows are used for headless export, where the context exists only to
// render into offscreen framebuffers.
func New(width, height int, visible bool, title string) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:         win,
		keyCallbacks:   make(map[glfw.Key]func()),
		shiftCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// RegisterKeyCallback registers a function to run when a key is pressed.
// Callbacks also fire on key repeat so held keys keep nudging parameters.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

// RegisterShiftedKeyCallback registers a function for Shift+key presses,
// for bindings like { and } that share a physical key.
func (c *Context) RegisterShiftedKeyCallback(key glfw.Key, f func()) {
	c.shiftCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if mods&glfw.ModShift != 0 {
		if callback, ok := c.shiftCallbacks[key]; ok {
			callback()
			return
		}
	}
	if callback, ok := c.keyCallbacks[key]; ok {
		callback()
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// SetTitle updates the window title.
func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// PrimaryMonitorSize returns the pixel size of the primary monitor's current
// video mode. GLFW must be initialized first.
func PrimaryMonitorSize() (int, int, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return 0, 0, fmt.Errorf("no primary monitor")
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return 0, 0, fmt.Errorf("no video mode for primary monitor")
	}
	return mode.Width, mode.Height, nil
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
