// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/internal/engine/input"
	"github.com/Faultbox/camrig/internal/logger"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // sdl or glfw
}

// CameraConfig holds the controller's startup mode and input settings.
type CameraConfig struct {
	Mode camera.Mode `yaml:"mode"`
	// MouseSensitivity is the raw value; the controller divides it by 10000.
	MouseSensitivity float32        `yaml:"mouse_sensitivity"`
	Bindings         BindingsConfig `yaml:"bindings"`
}

// BindingsConfig names the controller's keys and buttons (see input.ParseKey).
type BindingsConfig struct {
	Front      string `yaml:"front"`
	Back       string `yaml:"back"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Up         string `yaml:"up"`
	Down       string `yaml:"down"`
	Pan        string `yaml:"pan"`
	Alt        string `yaml:"alt"`
	SmoothZoom string `yaml:"smooth_zoom"`
	Recenter   string `yaml:"recenter"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
		},
		Camera: CameraConfig{
			Mode:             camera.ModeFree,
			MouseSensitivity: 30,
			Bindings: BindingsConfig{
				Front:      "w",
				Back:       "s",
				Left:       "a",
				Right:      "d",
				Up:         "e",
				Down:       "q",
				Pan:        "middle",
				Alt:        "left_alt",
				SmoothZoom: "left_control",
				Recenter:   "z",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Resolve converts the binding names to controller bindings.
func (b BindingsConfig) Resolve() (camera.Bindings, error) {
	var out camera.Bindings

	keys := []struct {
		field string
		name  string
		dst   *camera.Key
	}{
		{"front", b.Front, &out.Move[camera.MoveFront]},
		{"back", b.Back, &out.Move[camera.MoveBack]},
		{"left", b.Left, &out.Move[camera.MoveLeft]},
		{"right", b.Right, &out.Move[camera.MoveRight]},
		{"up", b.Up, &out.Move[camera.MoveUp]},
		{"down", b.Down, &out.Move[camera.MoveDown]},
		{"alt", b.Alt, &out.Alt},
		{"smooth_zoom", b.SmoothZoom, &out.SmoothZoom},
		{"recenter", b.Recenter, &out.Recenter},
	}
	for _, k := range keys {
		code, err := input.ParseKey(k.name)
		if err != nil {
			return camera.Bindings{}, fmt.Errorf("bindings.%s: %w", k.field, err)
		}
		*k.dst = code
	}

	pan, err := input.ParseButton(b.Pan)
	if err != nil {
		return camera.Bindings{}, fmt.Errorf("bindings.pan: %w", err)
	}
	out.Pan = pan

	return out, nil
}

// Validate checks values that YAML decoding alone cannot catch.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		errs = append(errs, fmt.Errorf("window backend %q: want %q or %q", c.Window.Backend, BackendSDL, BackendGLFW))
	}
	if !c.Camera.Mode.Valid() {
		errs = append(errs, fmt.Errorf("camera mode: %w: %d", camera.ErrUnknownMode, int(c.Camera.Mode)))
	}
	if c.Camera.MouseSensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera mouse_sensitivity %v must be positive", c.Camera.MouseSensitivity))
	}
	if _, err := c.Camera.Bindings.Resolve(); err != nil {
		errs = append(errs, fmt.Errorf("camera %w", err))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}
