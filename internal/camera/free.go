package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/camrig/pkg/math"
)

func (c *Controller) updateFree(pose *Pose, f frame) {
	s := &c.state

	c.freeZoom(pose, f.wheel)

	delta := s.pointerDelta
	alt := c.input.IsKeyDown(s.bindings.Alt)

	switch {
	case alt && c.input.IsKeyDown(s.bindings.SmoothZoom):
		if f.pan {
			s.targetDistance += delta.Y * freeSmoothZoomSensitivity
		}
	case alt:
		if f.pan {
			s.angle.X -= delta.X * freeMouseSensitivity
			s.angle.Y -= delta.Y * freeMouseSensitivity
		}
	case f.pan:
		c.freePan(pose, delta)
	}

	c.recenter(pose)

	s.targetDistance = math.Clamp(s.targetDistance, freeMinDistance, freeMaxDistance)
	limit := math.DegToRad(freePitchLimitDeg)
	s.angle.Y = math.Clamp(s.angle.Y, -limit, limit)
}

// freeZoom applies the wheel. Below the maximum distance scrolling out grows the
// distance; once at the maximum, or when the target sits on the near side of the
// ground plane, the target itself is pushed along the view direction instead.
func (c *Controller) freeZoom(pose *Pose, wheel float32) {
	s := &c.state
	d := s.targetDistance
	above := pose.Position.Y > pose.Target.Y
	below := pose.Position.Y < pose.Target.Y
	ty := pose.Target.Y

	// The cases are evaluated in order; boundaries at ty == 0 belong to the
	// dolly cases.
	switch {
	case d < freeMaxDistance && wheel < 0:
		s.targetDistance = min(d-wheel*scrollSensitivity, freeMaxDistance)

	// Looking down.
	case above && d == freeMaxDistance && wheel < 0:
		c.dollyTarget(pose, wheel)
	case above && ty >= 0:
		c.dollyTarget(pose, wheel)
	case above && ty < 0 && wheel > 0:
		s.targetDistance = max(d-wheel*scrollSensitivity, freeMinDistance)

	// Looking up.
	case below && d == freeMaxDistance && wheel < 0:
		c.dollyTarget(pose, wheel)
	case below && ty <= 0:
		c.dollyTarget(pose, wheel)
	case below && ty > 0 && wheel > 0:
		s.targetDistance = max(d-wheel*scrollSensitivity, freeMinDistance)
	}
}

// dollyTarget moves the target along the position-to-target direction.
func (c *Controller) dollyTarget(pose *Pose, wheel float32) {
	k := wheel * scrollSensitivity / c.state.targetDistance
	pose.Target = pose.Target.Add(pose.Target.Sub(pose.Position).Scale(k))
}

// freePan slides the target in the camera's right/up plane, faster when further away.
func (c *Controller) freePan(pose *Pose, delta math.Vec2) {
	s := &c.state
	sinYaw, cosYaw := math32.Sin(s.angle.X), math32.Cos(s.angle.X)
	sinPitch, cosPitch := math32.Sin(s.angle.Y), math32.Cos(s.angle.Y)

	dx := delta.X * freeMouseSensitivity
	dy := delta.Y * freeMouseSensitivity
	scale := s.targetDistance / freePanningDivider

	pose.Target.X += (-dx*cosYaw + dy*sinYaw*sinPitch) * scale
	pose.Target.Y += dy * cosPitch * scale
	pose.Target.Z += (dx*sinYaw + dy*cosYaw*sinPitch) * scale
}
