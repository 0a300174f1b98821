package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/camrig/internal/camera"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagBackend     = flag.String("backend", "", "Window backend (sdl or glfw)")
	flagMode        = flag.String("mode", "", "Initial camera mode (custom, free, orbital, first_person, third_person)")
	flagSensitivity = flag.Float64("sensitivity", 0, "Raw mouse sensitivity")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagMode != "" {
		m, err := camera.ParseMode(*flagMode)
		if err != nil {
			return fmt.Errorf("-mode: %w", err)
		}
		cfg.Camera.Mode = m
	}
	if *flagSensitivity > 0 {
		cfg.Camera.MouseSensitivity = float32(*flagSensitivity)
	}
	return nil
}
