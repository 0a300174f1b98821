// Package camera implements a single-camera controller with free, orbital,
// first-person and third-person modes.
//
// The controller is advanced once per frame from the render thread. It is not safe
// for concurrent use.
package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/camrig/internal/logger"
	"github.com/Faultbox/camrig/pkg/math"
)

// Controller turns per-frame input samples into camera pose updates.
type Controller struct {
	input InputProvider
	state State
	log   *zap.Logger
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithLogger replaces the controller's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithBindings replaces the default bindings.
func WithBindings(b Bindings) Option {
	return func(c *Controller) {
		c.state.bindings = b
	}
}

// WithMouseSensitivity sets the look sensitivity from a raw value (see SetMouseSensitivity).
func WithMouseSensitivity(raw float32) Option {
	return func(c *Controller) {
		c.state.mouseSensitivity = raw / sensitivityScale
	}
}

// NewController creates a controller in custom mode with default state.
func NewController(input InputProvider, opts ...Option) *Controller {
	c := &Controller{
		input: input,
		state: newState(),
		log:   logger.Named("camera"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	return c.state
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.state.mode
}

// Reset restores the default state, including bindings and sensitivity.
func (c *Controller) Reset() {
	c.state = newState()
	c.log.Debug("camera state reset")
}

// SetMode switches to mode, applying the transition's angle and distance resets.
// Invalid modes are ignored.
func (c *Controller) SetMode(mode Mode) {
	if !mode.Valid() {
		c.log.Warn("ignoring invalid camera mode", zap.Int("mode", int(mode)))
		return
	}

	s := &c.state
	from := s.mode

	switch {
	case from == ModeFirstPerson && (mode == ModeFree || mode == ModeOrbital):
		s.targetDistance = defaultTargetDistance
		s.angle.Y = math.DegToRad(-40)
	case from == ModeCustom && mode == ModeFree:
		s.targetDistance = 10
		s.angle.X = math.DegToRad(45)
		s.angle.Y = math.DegToRad(-40)
		c.input.ShowPointer()
	case from == ModeCustom && mode == ModeOrbital:
		s.angle.X = math.DegToRad(225)
		s.angle.Y = math.DegToRad(-40)
	}

	if mode == ModeThirdPerson && from != ModeThirdPerson {
		s.playerSet = false
	}
	s.mode = mode

	c.log.Debug("camera mode changed",
		zap.Stringer("from", from),
		zap.Stringer("to", mode),
		zap.Float32("distance", s.targetDistance),
		zap.Float32("yaw", s.angle.X),
		zap.Float32("pitch", s.angle.Y),
	)
}

// SetPanControlKey sets the pointer button used for panning and rotating.
func (c *Controller) SetPanControlKey(button Button) {
	c.state.bindings.Pan = button
}

// SetAltControlKey sets the modifier that turns panning into orbiting in free mode.
func (c *Controller) SetAltControlKey(key Key) {
	c.state.bindings.Alt = key
}

// SetSmoothZoomControlKey sets the modifier that turns alt-drag into a smooth zoom.
func (c *Controller) SetSmoothZoomControlKey(key Key) {
	c.state.bindings.SmoothZoom = key
}

// SetRecenterKey sets the key that moves the target back to the origin.
func (c *Controller) SetRecenterKey(key Key) {
	c.state.bindings.Recenter = key
}

// SetMoveControls sets the six movement keys. Note the argument order differs from
// the storage order in Bindings.Move.
func (c *Controller) SetMoveControls(front, back, left, right, up, down Key) {
	m := &c.state.bindings.Move
	m[MoveFront] = front
	m[MoveBack] = back
	m[MoveLeft] = left
	m[MoveRight] = right
	m[MoveUp] = up
	m[MoveDown] = down
}

// ApplyBindings replaces all bindings at once.
func (c *Controller) ApplyBindings(b Bindings) {
	c.state.bindings = b
	c.log.Debug("camera bindings applied")
}

// SetMouseSensitivity sets the look sensitivity; raw is divided by 10000.
func (c *Controller) SetMouseSensitivity(raw float32) {
	c.state.mouseSensitivity = raw / sensitivityScale
}

// SetPlayer moves the position followed in third-person mode.
func (c *Controller) SetPlayer(p math.Vec3) {
	c.state.player = p
	c.state.playerSet = true
}

// UpdatePlayer advances the camera like Update and keeps player in step with it.
// In third-person mode player is followed and moved by the movement keys; in
// first-person mode it is the feet below the eye position. Other modes leave it
// untouched.
func (c *Controller) UpdatePlayer(pose *Pose, player *math.Vec3) {
	switch c.state.mode {
	case ModeThirdPerson:
		c.SetPlayer(*player)
		c.Update(pose)
		*player = c.state.player
	case ModeFirstPerson:
		c.Update(pose)
		*player = pose.Position.Sub(math.Vec3{Y: eyeHeight()})
	default:
		c.Update(pose)
	}
}

// frame is the input sampled at the start of an update.
type frame struct {
	pointer math.Vec2
	wheel   float32
	pan     bool
	width   int
	height  int
}

func (c *Controller) sample() frame {
	w, h := c.input.ScreenSize()
	return frame{
		pointer: c.input.PointerPosition(),
		wheel:   float32(c.input.WheelDelta()),
		pan:     c.input.IsButtonDown(c.state.bindings.Pan),
		width:   w,
		height:  h,
	}
}

// Update advances the camera by one frame and writes the result into pose.
func (c *Controller) Update(pose *Pose) {
	f := c.sample()
	c.trackPointer(f)

	s := &c.state
	switch s.mode {
	case ModeFree:
		c.updateFree(pose, f)
	case ModeOrbital:
		c.updateOrbital(pose, f)
	case ModeFirstPerson:
		c.updateFirstPerson(pose)
	case ModeThirdPerson:
		c.updateThirdPerson(pose, f)
	}

	if s.mode.orbits() {
		pose.Position = pose.Target.Add(SphericalOffset(s.angle.X, s.angle.Y, s.targetDistance))
	}
}

// trackPointer updates the pointer delta, keeping the pointer away from the screen
// edges in modes that hide it.
func (c *Controller) trackPointer(f frame) {
	s := &c.state

	if s.mode.confinesPointer() {
		c.input.HidePointer()
		if to, ok := confine(f.pointer, f.width, f.height); ok {
			// The warp would read as a jump, so this frame keeps the previous delta.
			c.input.SetPointerPosition(to)
		} else {
			s.pointerDelta = f.pointer.Sub(s.lastPointer)
		}
	} else {
		c.input.ShowPointer()
		s.pointerDelta = f.pointer.Sub(s.lastPointer)
	}

	s.lastPointer = c.input.PointerPosition()
}

// confine returns where the pointer should be warped when it is within a third of the
// screen height from an edge. Edges are checked left, top, right, bottom.
func confine(p math.Vec2, width, height int) (math.Vec2, bool) {
	if width <= 0 || height <= 0 {
		return p, false
	}

	margin := float32(height / 3)
	w, h := float32(width), float32(height)

	switch {
	case p.X < margin:
		return math.Vec2{X: w - margin, Y: p.Y}, true
	case p.Y < margin:
		return math.Vec2{X: p.X, Y: h - margin}, true
	case p.X > w-margin:
		return math.Vec2{X: margin, Y: p.Y}, true
	case p.Y > h-margin:
		return math.Vec2{X: p.X, Y: margin}, true
	}
	return p, false
}

// recenter moves the target to the origin while the recenter key is held.
func (c *Controller) recenter(pose *Pose) {
	if c.input.IsKeyDown(c.state.bindings.Recenter) {
		pose.Target = math.Vec3{}
	}
}
