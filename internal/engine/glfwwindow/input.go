package glfwwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/pkg/math"
)

// Input implements camera.InputProvider over a GLFW window. Key and button codes are
// GLFW's own, so no translation table is needed.
type Input struct {
	window *glfw.Window

	// scroll accumulates fractional scroll offsets; WheelDelta reports whole steps.
	scroll float64
}

var _ camera.InputProvider = (*Input)(nil)

func newInput(w *glfw.Window) *Input {
	return &Input{window: w}
}

func (in *Input) addScroll(dy float64) {
	in.scroll += dy
}

// PointerPosition returns the cursor position in window coordinates.
func (in *Input) PointerPosition() math.Vec2 {
	x, y := in.window.GetCursorPos()
	return math.Vec2{X: float32(x), Y: float32(y)}
}

// SetPointerPosition warps the cursor.
func (in *Input) SetPointerPosition(pos math.Vec2) {
	in.window.SetCursorPos(float64(pos.X), float64(pos.Y))
}

// IsButtonDown reports whether a mouse button is held.
func (in *Input) IsButtonDown(button camera.Button) bool {
	if button < 0 || button > camera.Button(glfw.MouseButtonLast) {
		return false
	}
	return in.window.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

// WheelDelta returns the whole scroll steps since the last call and keeps the
// remainder for the next frame.
func (in *Input) WheelDelta() int {
	d := int(in.scroll)
	in.scroll -= float64(d)
	return d
}

// ScreenSize returns the window size in cursor coordinates.
func (in *Input) ScreenSize() (int, int) {
	return in.window.GetSize()
}

// ShowPointer restores the normal cursor.
func (in *Input) ShowPointer() {
	in.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// HidePointer hides the cursor while it is over the window.
func (in *Input) HidePointer() {
	in.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
}

// IsKeyDown reports whether a key is held.
func (in *Input) IsKeyDown(key camera.Key) bool {
	if key < camera.Key(glfw.KeySpace) || key > camera.Key(glfw.KeyLast) {
		return false
	}
	return in.window.GetKey(glfw.Key(key)) == glfw.Press
}

func keyCode(k glfw.Key) camera.Key {
	return camera.Key(k)
}
