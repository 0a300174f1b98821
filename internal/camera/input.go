package camera

import "github.com/Faultbox/camrig/pkg/math"

// Key is a keyboard key identifier in the host's numbering. The controller only
// compares keys for equality.
type Key int

// Button is a pointer button identifier in the host's numbering.
type Button int

// InputProvider is the host's window and input backend. Every call returns the
// latest polled sample and must not block.
type InputProvider interface {
	PointerPosition() math.Vec2
	SetPointerPosition(pos math.Vec2)
	IsButtonDown(button Button) bool
	// WheelDelta returns the wheel movement since the previous frame.
	// Positive values scroll away from the user.
	WheelDelta() int
	ScreenSize() (width, height int)
	ShowPointer()
	HidePointer()
	IsKeyDown(key Key) bool
}

// MoveDirection indexes Bindings.Move.
type MoveDirection int

// Move directions in binding order.
const (
	MoveFront MoveDirection = iota
	MoveLeft
	MoveBack
	MoveRight
	MoveUp
	MoveDown

	moveDirectionCount
)

// Bindings holds every input identifier the controller reacts to.
type Bindings struct {
	Move       [moveDirectionCount]Key
	Pan        Button
	Alt        Key
	SmoothZoom Key
	Recenter   Key
}

// Host codes used by DefaultBindings. Letters use their ASCII value, modifiers and
// buttons follow the GLFW numbering.
const (
	defaultPanButton  Button = 2   // middle button
	defaultAltKey     Key    = 342 // left alt
	defaultSmoothZoom Key    = 341 // left control
)

// DefaultBindings returns WASD movement with E/Q for up/down, middle-button panning,
// left alt for orbiting, left control for smooth zoom and Z to recenter.
func DefaultBindings() Bindings {
	return Bindings{
		Move: [moveDirectionCount]Key{
			MoveFront: 'W',
			MoveLeft:  'A',
			MoveBack:  'S',
			MoveRight: 'D',
			MoveUp:    'E',
			MoveDown:  'Q',
		},
		Pan:        defaultPanButton,
		Alt:        defaultAltKey,
		SmoothZoom: defaultSmoothZoom,
		Recenter:   'Z',
	}
}
