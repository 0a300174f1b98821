// Package glfwwindow is the GLFW window backend: an OpenGL 4.1 core window whose
// cursor and keyboard serve as a camera input provider.
package glfwwindow

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/camrig/internal/engine/input"
	"github.com/Faultbox/camrig/internal/logger"
)

func init() {
	// GLFW must be driven from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps a GLFW window with a current OpenGL context.
type Window struct {
	window *glfw.Window
	log    *zap.Logger

	input  *Input
	events *input.Queue
}

// New initializes GLFW and creates the window.
func New(cfg Config) (*Window, error) {
	log := logger.Named("glfw")

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		window: win,
		log:    log,
		input:  newInput(win),
		events: input.NewQueue(),
	}
	w.registerCallbacks()

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *Window) registerCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.events.Push(input.Event{Type: input.EventKeyDown, Key: keyCode(key)})
		case glfw.Release:
			w.events.Push(input.Event{Type: input.EventKeyUp, Key: keyCode(key)})
		}
	})

	w.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.input.addScroll(yoff)
	})

	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events.Push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})

	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.events.Push(input.Event{Type: input.EventQuit})
	})
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.log.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}

// Input returns the window's camera input provider.
func (w *Window) Input() *Input {
	return w.input
}

// PollEvents processes pending GLFW events and returns the frame's translated events.
func (w *Window) PollEvents() *input.Queue {
	w.events.Reset()
	glfw.PollEvents()
	return w.events
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// DrawableSize returns the framebuffer size in pixels.
func (w *Window) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}
