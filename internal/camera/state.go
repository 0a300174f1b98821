package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/camrig/pkg/math"
)

// Tuning constants. Angles are in degrees where the name says so.
const (
	defaultTargetDistance   float32 = 5.0
	defaultMouseSensitivity float32 = 0.003
	sensitivityScale        float32 = 10000

	scrollSensitivity float32 = 1.5

	freeMouseSensitivity      float32 = 0.01
	freeMinDistance           float32 = 0.3
	freeMaxDistance           float32 = 120.0
	freePitchLimitDeg         float32 = 85
	freeSmoothZoomSensitivity float32 = 0.05
	freePanningDivider        float32 = 5.1

	orbitalSpeed float32 = 0.01

	// Orbital and third-person modes share the minimum distance.
	orbitMinDistance float32 = 1.2

	thirdPersonMinPitchDeg float32 = -85
	thirdPersonMaxPitchDeg float32 = 5

	firstPersonPitchLimitDeg float32 = 85
	firstPersonFocusDistance float32 = 25.0
	stepTrigDivider          float32 = 5.0
	stepDivider              float32 = 30.0
	wavingDivider            float32 = 200.0

	movementDivider float32 = 20.0

	playerHeight    float32 = 0.9
	eyesHeightRatio float32 = 0.85
)

// PlayerSize is the width, height and depth of the followed player.
var PlayerSize = math.Vec3{X: 0.4, Y: playerHeight, Z: 0.4}

var thirdPersonOffset = math.Vec3{X: 0.4, Y: 0, Z: 0}

// eyeHeight is how far above the player's feet the eyes sit.
func eyeHeight() float32 {
	return playerHeight * eyesHeightRatio
}

// State is the frame-to-frame camera state owned by a Controller.
type State struct {
	mode Mode

	// angle.X is yaw, angle.Y is pitch, both in radians.
	angle          math.Vec2
	targetDistance float32

	lastPointer  math.Vec2
	pointerDelta math.Vec2

	moveStepCounter  int
	mouseSensitivity float32

	bindings Bindings

	// player is the followed position in third-person mode.
	player    math.Vec3
	playerSet bool
}

func newState() State {
	return State{
		mode:             ModeCustom,
		targetDistance:   defaultTargetDistance,
		mouseSensitivity: defaultMouseSensitivity,
		bindings:         DefaultBindings(),
	}
}

// Mode returns the active mode.
func (s State) Mode() Mode { return s.mode }

// Angle returns yaw (X) and pitch (Y) in radians.
func (s State) Angle() math.Vec2 { return s.angle }

// TargetDistance returns the radius of the sphere the camera sits on.
func (s State) TargetDistance() float32 { return s.targetDistance }

// PointerDelta returns the pointer motion applied on the last update.
func (s State) PointerDelta() math.Vec2 { return s.pointerDelta }

// LastPointer returns the pointer position recorded at the end of the last update.
func (s State) LastPointer() math.Vec2 { return s.lastPointer }

// MoveStepCounter returns the number of first-person frames spent walking.
func (s State) MoveStepCounter() int { return s.moveStepCounter }

// MouseSensitivity returns the normalized look sensitivity.
func (s State) MouseSensitivity() float32 { return s.mouseSensitivity }

// Bindings returns the configured input identifiers.
func (s State) Bindings() Bindings { return s.bindings }

// Player returns the followed position in third-person mode and whether it is set.
func (s State) Player() (math.Vec3, bool) { return s.player, s.playerSet }

// bobOffset is the vertical head-bob displacement after counter walking frames.
func bobOffset(counter float32) float32 {
	return math32.Sin(counter/stepTrigDivider) / stepDivider
}

// swayOffset is the sideways tilt applied to the up vector after counter walking frames.
func swayOffset(counter float32) float32 {
	return math32.Sin(counter/(stepTrigDivider*2)) / wavingDivider
}
