// Package renderer draws colored line geometry with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/camrig/internal/engine/scene"
	"github.com/Faultbox/camrig/internal/logger"
	"github.com/Faultbox/camrig/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// FovY is the vertical field of view in degrees.
	FovY float32
	Near float32
	Far  float32
}

// DefaultConfig returns a 60 degree projection with clip planes suited to the
// controller's 0.3 to 120 unit zoom range.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,
		FovY:   60,
		Near:   0.1,
		Far:    500,
	}
}

// Projection returns the perspective matrix for the configured viewport.
func (c Config) Projection() math.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	return math.Perspective(math.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program     uint32
	locViewProj int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = compileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locViewProj = uniformLocation(r.program, "uViewProj")

	r.log.Debug("line program created", zap.Uint32("program", r.program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Projection returns the current perspective matrix.
func (r *Renderer) Projection() math.Mat4 {
	return r.config.Projection()
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawLines draws the meshes with the given view matrix.
func (r *Renderer) DrawLines(view math.Mat4, meshes ...*Mesh) {
	viewProj := r.Projection().Mul(view)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())

	for _, m := range meshes {
		if m == nil || m.count == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.LINES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Mesh is a line list uploaded to the GPU.
type Mesh struct {
	vao     uint32
	vbo     uint32
	count   int32
	dynamic bool
}

// NewMesh uploads vertices. Dynamic meshes can be refilled every frame with Update.
func (r *Renderer) NewMesh(vertices []scene.Vertex, dynamic bool) *Mesh {
	m := &Mesh{dynamic: dynamic}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	stride := int32(scene.FloatsPerVertex * 4)
	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	m.upload(vertices)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("mesh created",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", len(vertices)),
		zap.Bool("dynamic", dynamic),
	)
	return m
}

// Update replaces the mesh's vertices.
func (m *Mesh) Update(vertices []scene.Vertex) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.upload(vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// upload expects the mesh's buffer to be bound.
func (m *Mesh) upload(vertices []scene.Vertex) {
	m.count = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	usage := uint32(gl.STATIC_DRAW)
	if m.dynamic {
		usage = gl.DYNAMIC_DRAW
	}
	data := scene.Flatten(vertices)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), usage)
}

// Delete frees the mesh's GPU objects.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
