// Package main is a small OpenGL viewer for exercising the camera controller: a grid,
// the world axes and a player marker, seen through any of the controller's modes.
//
// Keys 1-5 switch between custom, free, orbital, first-person and third-person
// modes, Backspace resets the controller, F12 saves a screenshot and Escape quits.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/internal/config"
	"github.com/Faultbox/camrig/internal/engine/input"
	"github.com/Faultbox/camrig/internal/engine/renderer"
	"github.com/Faultbox/camrig/internal/engine/scene"
	"github.com/Faultbox/camrig/internal/logger"
	"github.com/Faultbox/camrig/pkg/math"
)

const (
	windowTitle   = "camrig"
	screenshotDir = "screenshots"
)

var startPosition = math.Vec3{X: 0, Y: 2, Z: 5}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== camrig viewer ===",
		zap.String("backend", cfg.Window.Backend),
		zap.Stringer("mode", cfg.Camera.Mode),
	)

	if err := run(cfg); err != nil {
		logger.Error("viewer failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	h, err := openHost(cfg.Window)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer h.Close()

	width, height := h.DrawableSize()
	r, err := renderer.New(renderer.DefaultConfig(width, height))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	bindings, err := cfg.Camera.Bindings.Resolve()
	if err != nil {
		return err
	}
	ctrl := camera.NewController(h.Input(),
		camera.WithBindings(bindings),
		camera.WithMouseSensitivity(cfg.Camera.MouseSensitivity),
	)
	ctrl.SetMode(cfg.Camera.Mode)
	updateTitle(h, ctrl.Mode())

	world := r.NewMesh(append(scene.Grid(20, 1, scene.GridColor), scene.Axes(2)...), false)
	defer world.Delete()
	markers := r.NewMesh(nil, true)
	defer markers.Delete()

	reloads := watchConfig()
	if reloads != nil {
		defer reloads.Close()
	}
	configMode := cfg.Camera.Mode

	pose := camera.NewPose(startPosition, math.Vec3{})
	var player math.Vec3

	for {
		events := h.PollEvents()
		if events.QuitRequested() || events.IsKeyPressed(input.KeyEscape) {
			return nil
		}
		for _, e := range events.Events() {
			if e.Type == input.EventWindowResize {
				r.Resize(e.Width, e.Height)
			}
		}
		handleModeKeys(h, ctrl, &pose, events)

		if reloads != nil {
			configMode = applyReloads(h, ctrl, reloads, configMode)
		}

		ctrl.UpdatePlayer(&pose, &player)

		markers.Update(markerGeometry(ctrl.Mode(), pose, player))

		r.Begin()
		r.DrawLines(pose.ViewMatrix(), world, markers)
		if events.IsKeyPressed(input.KeyF12) {
			if _, err := r.Screenshot(screenshotDir); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}
		h.SwapBuffers()
	}
}

// handleModeKeys switches modes with the number keys and resets with Backspace.
func handleModeKeys(h host, ctrl *camera.Controller, pose *camera.Pose, events *input.Queue) {
	for i, m := range camera.Modes() {
		if events.IsKeyPressed(camera.Key('1' + i)) {
			ctrl.SetMode(m)
			updateTitle(h, m)
		}
	}

	if events.IsKeyPressed(input.KeyBackspace) {
		bindings := ctrl.State().Bindings()
		sensitivity := ctrl.State().MouseSensitivity()
		ctrl.Reset()
		ctrl.ApplyBindings(bindings)
		ctrl.SetMouseSensitivity(sensitivity * 10000)
		*pose = camera.NewPose(startPosition, math.Vec3{})
		updateTitle(h, ctrl.Mode())
	}
}

// watchConfig starts hot reload of the config file, if there is one.
func watchConfig() *config.Watcher {
	path := config.ResolvedPath()
	if path == "" {
		return nil
	}
	w, err := config.Watch(path, config.DefaultDebounce)
	if err != nil {
		logger.Warn("config hot reload disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	return w
}

// applyReloads applies pending config reloads to the controller. The mode is only
// switched when the file's mode changed, so keyboard mode changes survive unrelated
// edits. Returns the mode last seen in the file.
func applyReloads(h host, ctrl *camera.Controller, w *config.Watcher, configMode camera.Mode) camera.Mode {
	for {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return configMode
			}
			bindings, err := cfg.Camera.Bindings.Resolve()
			if err != nil {
				logger.Warn("ignoring reloaded bindings", zap.Error(err))
			} else {
				ctrl.ApplyBindings(bindings)
			}
			ctrl.SetMouseSensitivity(cfg.Camera.MouseSensitivity)

			if cfg.Camera.Mode != configMode {
				configMode = cfg.Camera.Mode
				ctrl.SetMode(configMode)
				updateTitle(h, configMode)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return configMode
			}
			logger.Warn("config reload failed", zap.Error(err))
		default:
			return configMode
		}
	}
}

// markerGeometry draws the target and, in third-person mode, the followed player.
func markerGeometry(m camera.Mode, pose camera.Pose, player math.Vec3) []scene.Vertex {
	v := scene.Cross(pose.Target, 0.2, scene.TargetColor)
	if m == camera.ModeThirdPerson {
		half := camera.PlayerSize.Scale(0.5)
		v = append(v, scene.BoxAround(player.Add(math.Vec3{Y: half.Y}), half, scene.PlayerColor)...)
	}
	return v
}

func updateTitle(h host, m camera.Mode) {
	h.SetTitle(fmt.Sprintf("%s - %s", windowTitle, m))
}
