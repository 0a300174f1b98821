package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/camrig/pkg/math"
)

// walk moves p with the movement keys relative to the current yaw and reports
// whether a horizontal key was held. Front and back also climb or sink with pitch. Front wins over back, left over right and up
// over down.
func (c *Controller) walk(p *math.Vec3) bool {
	s := &c.state
	keys := s.bindings.Move
	down := c.input.IsKeyDown

	const step = 1 / movementDivider
	sinYaw, cosYaw := math32.Sin(s.angle.X), math32.Cos(s.angle.X)
	sinPitch := math32.Sin(s.angle.Y)
	moving := false

	switch {
	case down(keys[MoveFront]):
		p.X -= sinYaw * step
		p.Y += sinPitch * step
		p.Z -= cosYaw * step
		moving = true
	case down(keys[MoveBack]):
		p.X += sinYaw * step
		p.Y -= sinPitch * step
		p.Z += cosYaw * step
		moving = true
	}

	switch {
	case down(keys[MoveLeft]):
		p.X -= cosYaw * step
		p.Z += sinYaw * step
		moving = true
	case down(keys[MoveRight]):
		p.X += cosYaw * step
		p.Z -= sinYaw * step
		moving = true
	}

	switch {
	case down(keys[MoveUp]):
		p.Y += step
	case down(keys[MoveDown]):
		p.Y -= step
	}

	return moving
}

// look turns the camera by the pointer delta and clamps pitch to [minDeg, maxDeg].
func (c *Controller) look(minDeg, maxDeg float32) {
	s := &c.state
	s.angle.X -= s.pointerDelta.X * s.mouseSensitivity
	s.angle.Y -= s.pointerDelta.Y * s.mouseSensitivity
	s.angle.Y = math.Clamp(s.angle.Y, math.DegToRad(minDeg), math.DegToRad(maxDeg))
}

func (c *Controller) updateThirdPerson(pose *Pose, f frame) {
	s := &c.state

	if !s.playerSet {
		// Seed so that the first frame keeps the current target.
		s.player = pose.Target.Sub(thirdPersonTargetOffset(s.angle.X))
		s.playerSet = true
	}

	c.walk(&s.player)
	c.look(thirdPersonMinPitchDeg, thirdPersonMaxPitchDeg)

	s.targetDistance = max(s.targetDistance-f.wheel*scrollSensitivity, orbitMinDistance)

	pose.Target = s.player.Add(thirdPersonTargetOffset(s.angle.X))
}

// thirdPersonTargetOffset is where the camera aims relative to the player's feet:
// beside the player at eye height. The z term reuses sin(yaw) for both contributions.
func thirdPersonTargetOffset(yaw float32) math.Vec3 {
	off := thirdPersonOffset
	sinYaw, cosYaw := math32.Sin(yaw), math32.Cos(yaw)
	return math.Vec3{
		X: off.X*cosYaw + off.Z*sinYaw,
		Y: off.Y + eyeHeight(),
		Z: off.Z*sinYaw - off.X*sinYaw,
	}
}

func (c *Controller) updateFirstPerson(pose *Pose) {
	s := &c.state
	prevBob := bobOffset(float32(s.moveStepCounter))

	if c.walk(&pose.Position) {
		s.moveStepCounter++
	}

	c.look(-firstPersonPitchLimitDeg, firstPersonPitchLimitDeg)

	sinYaw, cosYaw := math32.Sin(s.angle.X), math32.Cos(s.angle.X)
	pose.Target = math.Vec3{
		X: pose.Position.X - sinYaw*firstPersonFocusDistance,
		Y: pose.Position.Y + math32.Sin(s.angle.Y)*firstPersonFocusDistance,
		Z: pose.Position.Z - cosYaw*firstPersonFocusDistance,
	}

	// Only the change in bob is applied so standing still never drifts.
	pose.Position.Y -= bobOffset(float32(s.moveStepCounter)) - prevBob

	sway := swayOffset(float32(s.moveStepCounter))
	pose.Up.X = sway
	pose.Up.Z = -sway
}
