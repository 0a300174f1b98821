package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored column-major, as OpenGL expects: element (row, col)
// lives at index col*4+row.
type Mat4 [16]float32

func (m *Mat4) set(row, col int, v float32) { m[col*4+row] = v }
func (m Mat4) at(row, col int) float32      { return m[col*4+row] }

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.set(i, i, 1)
	}
	return m
}

// Translate returns a matrix translating by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m.set(0, 3, x)
	m.set(1, 3, y)
	m.set(2, 3, z)
	return m
}

// Perspective returns a right-handed projection into OpenGL clip space.
// fovY is in radians and aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	depth := near - far

	var m Mat4
	m.set(0, 0, f/aspect)
	m.set(1, 1, f)
	m.set(2, 2, (far+near)/depth)
	m.set(2, 3, 2*far*near/depth)
	m.set(3, 2, -1)
	return m
}

// LookAt returns the view matrix for an eye looking at center. up only needs to be
// non-parallel to the view direction; it is not required to be unit length.
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	camUp := right.Cross(forward)

	m := Identity()
	rows := [3]Vec3{right, camUp, forward.Scale(-1)}
	for r, axis := range rows {
		m.set(r, 0, axis.X)
		m.set(r, 1, axis.Y)
		m.set(r, 2, axis.Z)
		m.set(r, 3, -axis.Dot(eye))
	}
	return m
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.at(row, k) * o.at(k, col)
			}
			out.set(row, col, sum)
		}
	}
	return out
}

// TransformVec3 transforms the point v (w=1), dividing by w when it is not 0 or 1.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	in := [4]float32{v.X, v.Y, v.Z, 1}
	var out [4]float32
	for row := range out {
		for col, c := range in {
			out[row] += m.at(row, col) * c
		}
	}
	if w := out[3]; w != 0 && w != 1 {
		return Vec3{X: out[0] / w, Y: out[1] / w, Z: out[2] / w}
	}
	return Vec3{X: out[0], Y: out[1], Z: out[2]}
}

// Ptr returns a pointer to the first element for gl.UniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
