package camera

func (c *Controller) updateOrbital(pose *Pose, f frame) {
	s := &c.state

	s.angle.X += orbitalSpeed
	s.targetDistance = max(s.targetDistance-f.wheel*scrollSensitivity, orbitMinDistance)

	c.recenter(pose)
}
