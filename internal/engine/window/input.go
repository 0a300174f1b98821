package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/camrig/internal/camera"
	"github.com/Faultbox/camrig/internal/engine/input"
	"github.com/Faultbox/camrig/pkg/math"
)

// Input implements camera.InputProvider over SDL's mouse and keyboard state.
type Input struct {
	window *sdl.Window

	// wheel accumulates wheel events between WheelDelta calls.
	wheel int
}

var _ camera.InputProvider = (*Input)(nil)

func newInput(w *sdl.Window) *Input {
	return &Input{window: w}
}

func (in *Input) addWheel(dy int) {
	in.wheel += dy
}

// PointerPosition returns the pointer position in window coordinates.
func (in *Input) PointerPosition() math.Vec2 {
	x, y, _ := sdl.GetMouseState()
	return math.Vec2{X: float32(x), Y: float32(y)}
}

// SetPointerPosition warps the pointer inside the window.
func (in *Input) SetPointerPosition(pos math.Vec2) {
	in.window.WarpMouseInWindow(int32(pos.X), int32(pos.Y))
}

// IsButtonDown reports whether a pointer button is held.
func (in *Input) IsButtonDown(button camera.Button) bool {
	b, ok := sdlButtons[button]
	if !ok {
		return false
	}
	_, _, state := sdl.GetMouseState()
	return state&(1<<(b-1)) != 0
}

// WheelDelta returns and clears the accumulated wheel motion.
func (in *Input) WheelDelta() int {
	d := in.wheel
	in.wheel = 0
	return d
}

// ScreenSize returns the window size in the pointer's coordinate space.
func (in *Input) ScreenSize() (int, int) {
	w, h := in.window.GetSize()
	return int(w), int(h)
}

// ShowPointer shows the system cursor.
func (in *Input) ShowPointer() {
	sdl.ShowCursor(sdl.ENABLE)
}

// HidePointer hides the system cursor.
func (in *Input) HidePointer() {
	sdl.ShowCursor(sdl.DISABLE)
}

// IsKeyDown reports whether a key is held.
func (in *Input) IsKeyDown(key camera.Key) bool {
	sc, ok := scancodeFromKey(key)
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

var sdlButtons = map[camera.Button]uint32{
	input.ButtonLeft:   sdl.BUTTON_LEFT,
	input.ButtonMiddle: sdl.BUTTON_MIDDLE,
	input.ButtonRight:  sdl.BUTTON_RIGHT,
	input.Button4:      sdl.BUTTON_X1,
	input.Button5:      sdl.BUTTON_X2,
}

var namedScancodes = map[camera.Key]sdl.Scancode{
	input.KeySpace:        sdl.SCANCODE_SPACE,
	input.KeyEscape:       sdl.SCANCODE_ESCAPE,
	input.KeyEnter:        sdl.SCANCODE_RETURN,
	input.KeyTab:          sdl.SCANCODE_TAB,
	input.KeyBackspace:    sdl.SCANCODE_BACKSPACE,
	input.KeyRight:        sdl.SCANCODE_RIGHT,
	input.KeyLeft:         sdl.SCANCODE_LEFT,
	input.KeyDown:         sdl.SCANCODE_DOWN,
	input.KeyUp:           sdl.SCANCODE_UP,
	input.KeyLeftShift:    sdl.SCANCODE_LSHIFT,
	input.KeyLeftControl:  sdl.SCANCODE_LCTRL,
	input.KeyLeftAlt:      sdl.SCANCODE_LALT,
	input.KeyLeftSuper:    sdl.SCANCODE_LGUI,
	input.KeyRightShift:   sdl.SCANCODE_RSHIFT,
	input.KeyRightControl: sdl.SCANCODE_RCTRL,
	input.KeyRightAlt:     sdl.SCANCODE_RALT,
	input.KeyRightSuper:   sdl.SCANCODE_RGUI,
}

var namedKeys = func() map[sdl.Scancode]camera.Key {
	m := make(map[sdl.Scancode]camera.Key, len(namedScancodes))
	for k, sc := range namedScancodes {
		m[sc] = k
	}
	return m
}()

// scancodeFromKey maps a key code to the SDL scancode at the same physical position
// on a US layout. SDL orders letters A-Z, digits 1-9 then 0, and F1-F12 contiguously.
func scancodeFromKey(k camera.Key) (sdl.Scancode, bool) {
	switch {
	case k >= 'A' && k <= 'Z':
		return sdl.SCANCODE_A + sdl.Scancode(k-'A'), true
	case k == '0':
		return sdl.SCANCODE_0, true
	case k >= '1' && k <= '9':
		return sdl.SCANCODE_1 + sdl.Scancode(k-'1'), true
	case k >= input.KeyF1 && k <= input.KeyF12:
		return sdl.SCANCODE_F1 + sdl.Scancode(k-input.KeyF1), true
	}
	sc, ok := namedScancodes[k]
	return sc, ok
}

func keyFromScancode(sc sdl.Scancode) (camera.Key, bool) {
	switch {
	case sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z:
		return camera.Key('A' + int(sc-sdl.SCANCODE_A)), true
	case sc == sdl.SCANCODE_0:
		return '0', true
	case sc >= sdl.SCANCODE_1 && sc <= sdl.SCANCODE_9:
		return camera.Key('1' + int(sc-sdl.SCANCODE_1)), true
	case sc >= sdl.SCANCODE_F1 && sc <= sdl.SCANCODE_F12:
		return input.KeyF1 + camera.Key(sc-sdl.SCANCODE_F1), true
	}
	k, ok := namedKeys[sc]
	return k, ok
}
