package camera

import "github.com/Faultbox/camrig/pkg/math"

// Pose is the host-owned camera placement. Up is not kept at unit length:
// first-person mode tilts it slightly while walking.
type Pose struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPose returns a pose at position looking at target with world up.
func NewPose(position, target math.Vec3) Pose {
	return Pose{Position: position, Target: target, Up: math.Up}
}

// ViewMatrix returns the view matrix for this pose.
func (p Pose) ViewMatrix() math.Mat4 {
	return math.LookAt(p.Position, p.Target, p.Up)
}
