package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/camrig/pkg/math"
)

// SphericalOffset returns the camera position relative to its target for the given
// yaw, pitch (radians) and distance.
//
// Height uses sin(pitch)^2 with the sign flipped by pitch instead of sin(pitch):
// negative pitch places the camera above the target.
func SphericalOffset(yaw, pitch, distance float32) math.Vec3 {
	sinPitch := math32.Sin(pitch)
	cosPitch := math32.Cos(pitch)

	height := sinPitch * distance * sinPitch
	if pitch > 0 {
		height = -height
	}

	return math.Vec3{
		X: math32.Sin(yaw) * distance * cosPitch,
		Y: height,
		Z: math32.Cos(yaw) * distance * cosPitch,
	}
}

// RecoverSpherical inverts SphericalOffset. Yaw is returned in (-Pi, Pi], pitch in
// [-Pi/2, Pi/2]. A zero offset yields all zeros.
func RecoverSpherical(offset math.Vec3) (yaw, pitch, distance float32) {
	horizontal := math32.Hypot(offset.X, offset.Z)
	rise := math32.Abs(offset.Y)

	// rise = d*sin^2 and horizontal = d*cos, so d^2 - rise*d - horizontal^2 = 0.
	distance = (rise + math32.Sqrt(rise*rise+4*horizontal*horizontal)) / 2
	if distance == 0 {
		return 0, 0, 0
	}

	pitch = math32.Atan2(math32.Sqrt(rise/distance), horizontal/distance)
	if offset.Y > 0 {
		pitch = -pitch
	}
	yaw = math32.Atan2(offset.X, offset.Z)
	return yaw, pitch, distance
}
