package main

import (
	"fmt"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/internal/config"
	"github.com/Faultbox/camrig/internal/engine/glfwwindow"
	"github.com/Faultbox/camrig/internal/engine/input"
	"github.com/Faultbox/camrig/internal/engine/window"
)

// host is the window backend the viewer runs on.
type host interface {
	Input() camera.InputProvider
	PollEvents() *input.Queue
	SwapBuffers()
	DrawableSize() (int, int)
	SetTitle(title string)
	Close()
}

type sdlHost struct {
	*window.Window
}

func (h sdlHost) Input() camera.InputProvider { return h.Window.Input() }

type glfwHost struct {
	*glfwwindow.Window
}

func (h glfwHost) Input() camera.InputProvider { return h.Window.Input() }

// openHost creates the window for the configured backend.
func openHost(cfg config.WindowConfig) (host, error) {
	switch cfg.Backend {
	case config.BackendSDL:
		w, err := window.New(window.Config{
			Title:      windowTitle,
			Width:      cfg.Width,
			Height:     cfg.Height,
			Fullscreen: cfg.Fullscreen,
			VSync:      cfg.VSync,
		})
		if err != nil {
			return nil, err
		}
		return sdlHost{w}, nil

	case config.BackendGLFW:
		w, err := glfwwindow.New(glfwwindow.Config{
			Title:      windowTitle,
			Width:      cfg.Width,
			Height:     cfg.Height,
			Fullscreen: cfg.Fullscreen,
			VSync:      cfg.VSync,
		})
		if err != nil {
			return nil, err
		}
		return glfwHost{w}, nil
	}
	return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
}
