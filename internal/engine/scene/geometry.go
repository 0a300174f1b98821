// Package scene generates line geometry for the camera viewer: a ground grid, world
// axes and wireframe boxes.
package scene

import "github.com/Faultbox/camrig/pkg/math"

// Vertex is a colored line endpoint, laid out as [x, y, z, r, g, b].
type Vertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// FloatsPerVertex is the number of float32 values in a Vertex.
const FloatsPerVertex = 6

// Color is an RGB triple.
type Color [3]float32

// Palette used by the viewer.
var (
	GridColor   = Color{0.35, 0.35, 0.4}
	AxisXColor  = Color{0.9, 0.2, 0.2}
	AxisYColor  = Color{0.2, 0.9, 0.2}
	AxisZColor  = Color{0.2, 0.4, 0.9}
	PlayerColor = Color{1.0, 0.8, 0.2}
	TargetColor = Color{0.9, 0.9, 0.9}
)

func vertex(p math.Vec3, c Color) Vertex {
	return Vertex{p.X, p.Y, p.Z, c[0], c[1], c[2]}
}

// Line appends a single segment from a to b.
func Line(dst []Vertex, a, b math.Vec3, c Color) []Vertex {
	return append(dst, vertex(a, c), vertex(b, c))
}

// Grid generates a square grid on the y=0 plane centered on the origin, with
// halfCells cells of size cellSize on each side. Returns nil for empty grids.
func Grid(halfCells int, cellSize float32, c Color) []Vertex {
	if halfCells <= 0 || cellSize <= 0 {
		return nil
	}

	extent := float32(halfCells) * cellSize
	vertices := make([]Vertex, 0, 4*(2*halfCells+1))

	// Lines along Z
	for i := -halfCells; i <= halfCells; i++ {
		x := float32(i) * cellSize
		vertices = Line(vertices, math.Vec3{X: x, Z: -extent}, math.Vec3{X: x, Z: extent}, c)
	}

	// Lines along X
	for i := -halfCells; i <= halfCells; i++ {
		z := float32(i) * cellSize
		vertices = Line(vertices, math.Vec3{X: -extent, Z: z}, math.Vec3{X: extent, Z: z}, c)
	}

	return vertices
}

// Axes generates the three world axes from the origin, each length long.
func Axes(length float32) []Vertex {
	var origin math.Vec3
	v := make([]Vertex, 0, 6)
	v = Line(v, origin, math.Vec3{X: length}, AxisXColor)
	v = Line(v, origin, math.Vec3{Y: length}, AxisYColor)
	v = Line(v, origin, math.Vec3{Z: length}, AxisZColor)
	return v
}

// BoxVertexCount is the number of vertices in a wireframe box (12 edges x 2).
const BoxVertexCount = 24

// Box generates a wireframe box between the min and max corners.
func Box(min, max math.Vec3, c Color) []Vertex {
	corners := [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
	edges := [12][2]int{
		// Bottom face
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Top face
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		// Vertical edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	v := make([]Vertex, 0, BoxVertexCount)
	for _, e := range edges {
		v = Line(v, corners[e[0]], corners[e[1]], c)
	}
	return v
}

// BoxAround generates a wireframe box of the given half extents centered on center.
func BoxAround(center, halfExtents math.Vec3, c Color) []Vertex {
	return Box(center.Sub(halfExtents), center.Add(halfExtents), c)
}

// Cross generates a small three-axis marker at p.
func Cross(p math.Vec3, size float32, c Color) []Vertex {
	v := make([]Vertex, 0, 6)
	v = Line(v, p.Sub(math.Vec3{X: size}), p.Add(math.Vec3{X: size}), c)
	v = Line(v, p.Sub(math.Vec3{Y: size}), p.Add(math.Vec3{Y: size}), c)
	v = Line(v, p.Sub(math.Vec3{Z: size}), p.Add(math.Vec3{Z: size}), c)
	return v
}

// Flatten converts vertices to the interleaved float layout uploaded to the GPU.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B)
	}
	return out
}
