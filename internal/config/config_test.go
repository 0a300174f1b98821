package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/internal/engine/input"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.Backend != BackendSDL {
		t.Errorf("expected backend sdl, got %s", cfg.Window.Backend)
	}

	// Test camera defaults
	if cfg.Camera.Mode != camera.ModeFree {
		t.Errorf("expected mode free, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.MouseSensitivity != 30 {
		t.Errorf("expected sensitivity 30, got %f", cfg.Camera.MouseSensitivity)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultBindingsMatchController(t *testing.T) {
	b, err := Default().Camera.Bindings.Resolve()
	if err != nil {
		t.Fatalf("failed to resolve default bindings: %v", err)
	}
	if b != camera.DefaultBindings() {
		t.Errorf("expected %+v, got %+v", camera.DefaultBindings(), b)
	}
}

func TestResolveBindingsError(t *testing.T) {
	b := Default().Camera.Bindings
	b.SmoothZoom = "hyper"

	_, err := b.Resolve()
	if !errors.Is(err, input.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "smooth_zoom") {
		t.Errorf("expected error to name the field, got %v", err)
	}

	b = Default().Camera.Bindings
	b.Pan = "thumb"
	if _, err := b.Resolve(); err == nil || !strings.Contains(err.Error(), "bindings.pan") {
		t.Errorf("expected pan error, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  backend: glfw

camera:
  mode: third-person
  mouse_sensitivity: 45
  bindings:
    front: i
    pan: right
    recenter: space

logging:
  level: "debug"
  log_file: "camviewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Backend != BackendGLFW {
		t.Errorf("expected backend glfw, got %s", cfg.Window.Backend)
	}

	if cfg.Camera.Mode != camera.ModeThirdPerson {
		t.Errorf("expected mode third_person, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.MouseSensitivity != 45 {
		t.Errorf("expected sensitivity 45, got %f", cfg.Camera.MouseSensitivity)
	}

	b, err := cfg.Camera.Bindings.Resolve()
	if err != nil {
		t.Fatalf("failed to resolve bindings: %v", err)
	}
	if b.Move[camera.MoveFront] != 'I' {
		t.Errorf("expected front key I, got %d", b.Move[camera.MoveFront])
	}
	if b.Move[camera.MoveBack] != 'S' {
		t.Errorf("expected unset back key to keep default S, got %d", b.Move[camera.MoveBack])
	}
	if b.Pan != input.ButtonRight {
		t.Errorf("expected pan button right, got %d", b.Pan)
	}
	if b.Recenter != input.KeySpace {
		t.Errorf("expected recenter space, got %d", b.Recenter)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "camviewer.log" {
		t.Errorf("expected log file 'camviewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "window:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown mode", "camera:\n  mode: sideways\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"unknown backend", func(c *Config) { c.Window.Backend = "vulkan" }, "backend"},
		{"invalid mode", func(c *Config) { c.Camera.Mode = camera.Mode(9) }, "camera mode"},
		{"zero sensitivity", func(c *Config) { c.Camera.MouseSensitivity = 0 }, "mouse_sensitivity"},
		{"unknown key", func(c *Config) { c.Camera.Bindings.Up = "??" }, "bindings.up"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  mode: orbital\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Camera.Mode != camera.ModeOrbital {
		t.Errorf("expected mode orbital, got %s", cfg.Camera.Mode)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected default width to survive, got %d", cfg.Window.Width)
	}

	if err := os.WriteFile(configPath, []byte("window:\n  backend: vulkan\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFile(configPath); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
	if ResolvedPath() != path {
		t.Errorf("expected resolved path %s, got %s", path, ResolvedPath())
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "backend, mode and sensitivity flags",
			setup: func() {
				*flagBackend = BackendGLFW
				*flagMode = "first-person"
				*flagSensitivity = 12.5
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Backend != BackendGLFW {
					t.Errorf("expected backend glfw, got %s", cfg.Window.Backend)
				}
				if cfg.Camera.Mode != camera.ModeFirstPerson {
					t.Errorf("expected mode first_person, got %s", cfg.Camera.Mode)
				}
				if cfg.Camera.MouseSensitivity != 12.5 {
					t.Errorf("expected sensitivity 12.5, got %f", cfg.Camera.MouseSensitivity)
				}
			},
			teardown: func() {
				*flagBackend = ""
				*flagMode = ""
				*flagSensitivity = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadMode(t *testing.T) {
	*flagMode = "sideways"
	defer func() { *flagMode = "" }()

	err := applyFlags(Default())
	if !errors.Is(err, camera.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
camera:
  mode: orbital
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flags to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	*flagMode = "free"
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagMode = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}

	if cfg.Camera.Mode != camera.ModeFree {
		t.Errorf("expected mode free from flag, got %s", cfg.Camera.Mode)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Mode = camera.ModeFirstPerson
	cfg.Camera.Bindings.Recenter = "r"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "mode: first_person") {
		t.Errorf("expected mode name in saved YAML, got:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	if err := Default().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		t.Errorf("expected saved config in %s: %v", ConfigDir(), err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  mode: free\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera:\n  mode: orbital\n  mouse_sensitivity: 60\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Camera.Mode != camera.ModeOrbital {
			t.Errorf("expected mode orbital, got %s", cfg.Camera.Mode)
		}
		if cfg.Camera.MouseSensitivity != 60 {
			t.Errorf("expected sensitivity 60, got %f", cfg.Camera.MouseSensitivity)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchReportsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  mode: free\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera:\n  mode: sideways\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-w.Updates:
		t.Fatalf("expected an error, got config %+v", cfg)
	case err := <-w.Errors:
		if !errors.Is(err, camera.ErrUnknownMode) {
			t.Errorf("expected ErrUnknownMode, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  mode: free\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case cfg := <-w.Updates:
		t.Fatalf("unexpected reload %+v", cfg)
	case err := <-w.Errors:
		t.Fatalf("unexpected error %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	w, err := Watch(path, 0)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("expected Updates to be closed")
	}
}

func TestSaveToLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	for i := 0; i < 3; i++ {
		if err := Default().SaveTo(path); err != nil {
			t.Fatalf("SaveTo: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.yaml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only config.yaml, got %v", names)
	}
}
