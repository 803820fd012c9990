// Package renderer draws dome geometry once per view with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/engine/geometry"
	"github.com/Faultbox/domeview/internal/engine/shader"
	"github.com/Faultbox/domeview/internal/logger"
	"github.com/Faultbox/domeview/internal/scene"
	"github.com/Faultbox/domeview/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uMVP;

out vec4 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const fragmentShader = `
#version 410 core

in vec4 vColor;
uniform float uHighlight;
out vec4 FragColor;

void main() {
	FragColor = vec4(mix(vColor.rgb, vec3(1.0, 1.0, 0.6), uHighlight * 0.25), vColor.a);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// stream is one dynamic vertex buffer with its attribute layout.
type stream struct {
	vao, vbo uint32
	capacity int
	count    int32
}

func newStream() *stream {
	s := &stream{}
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(geometry.Stride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return s
}

// upload replaces the buffer contents, growing the store when needed.
func (s *stream) upload(data []float32) {
	s.count = int32(len(data) / geometry.Stride)
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	size := len(data) * 4
	if size > s.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
		s.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&data[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (s *stream) draw(mode uint32) {
	if s.count == 0 {
		return
	}
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(mode, 0, s.count)
}

func (s *stream) delete() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
}

// Renderer owns the GL state for drawing domes.
type Renderer struct {
	config  Config
	program *shader.Program

	opaque    *stream
	triangles *stream
	lines     *stream

	buffers geometry.Buffers
}

// New creates a renderer. It must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.opaque = newStream()
	r.triangles = newStream()
	r.lines = newStream()

	logger.Debug("renderer ready", zap.Uint32("program", r.program.ID))
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, s := range []*stream{r.opaque, r.triangles, r.lines} {
		if s != nil {
			s.delete()
		}
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawFrame uploads the frame geometry once and draws it for every view.
func (r *Renderer) DrawFrame(f scene.Frame, viewProj math.Mat4) {
	geometry.Build(f, &r.buffers)
	r.opaque.upload(r.buffers.Opaque)
	r.triangles.upload(r.buffers.Triangles)
	r.lines.upload(r.buffers.Lines)

	r.program.Use()
	for _, d := range f.Draws {
		r.program.SetMat4("uMVP", viewProj.Mul(d.Model))
		highlight := float32(0)
		if d.Dragging {
			highlight = 1
		}
		r.program.SetFloat("uHighlight", highlight)

		r.opaque.draw(gl.TRIANGLES)
		r.lines.draw(gl.LINES)

		// Translucent fill last, without depth writes, so patches behind
		// stay visible through the ones in front.
		gl.DepthMask(false)
		r.triangles.draw(gl.TRIANGLES)
		gl.DepthMask(true)
	}
	gl.BindVertexArray(0)
}

// Stats returns the vertex counts of the last upload.
func (r *Renderer) Stats() (opaque, triangles, lines int32) {
	return r.opaque.count, r.triangles.count, r.lines.count
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
