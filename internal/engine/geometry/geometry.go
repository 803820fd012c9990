// Package geometry turns a composed frame into interleaved vertex data for
// the renderer. Vertices are in dome space; each view supplies its own model
// matrix at draw time.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/domeview/internal/scene"
	"github.com/Faultbox/domeview/pkg/dome"
)

// Stride is the number of floats per vertex: x, y, z, r, g, b, a.
const Stride = 7

// ScreenDepth is the z of the backing screen quad, just below the dome base.
const ScreenDepth = -0.1

// CenterMarkSize is the half length of the patch center crosses.
const CenterMarkSize = 2

// Color is RGBA in [0, 1].
type Color [4]float32

// RGBA converts 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

var (
	FillColor      = RGBA(0, 150, 255, 50)
	OutlineColor   = RGBA(255, 255, 255, 255)
	RayColor       = RGBA(255, 0, 0, 255)
	CenterColor    = RGBA(255, 0, 0, 255)
	CenterRayColor = RGBA(255, 255, 0, 255)
	ArcInnerColor  = RGBA(255, 0, 0, 255)
	ArcOuterColor  = RGBA(0, 255, 0, 255)
	ScreenColor    = RGBA(40, 40, 48, 255)
)

// Buffers holds the triangle and line vertex streams of a frame.
// Opaque triangles (the screen) come before translucent ones so the renderer
// can draw them in one pass with depth writes off for the rest.
type Buffers struct {
	Opaque    []float32
	Triangles []float32
	Lines     []float32
}

// Reset empties the buffers, keeping their storage.
func (b *Buffers) Reset() {
	b.Opaque = b.Opaque[:0]
	b.Triangles = b.Triangles[:0]
	b.Lines = b.Lines[:0]
}

// OpaqueCount returns the number of opaque triangle vertices.
func (b *Buffers) OpaqueCount() int32 {
	return int32(len(b.Opaque) / Stride)
}

// TriangleCount returns the number of translucent triangle vertices.
func (b *Buffers) TriangleCount() int32 {
	return int32(len(b.Triangles) / Stride)
}

// LineCount returns the number of line vertices.
func (b *Buffers) LineCount() int32 {
	return int32(len(b.Lines) / Stride)
}

// Build fills b with the geometry of f.
func Build(f scene.Frame, b *Buffers) {
	b.Reset()
	p := f.Params

	if p.ShowScreen {
		b.Opaque = appendScreen(b.Opaque, f.Mesh.Radius)
	}

	for _, patch := range f.Mesh.Patches {
		b.Triangles = appendPatch(b.Triangles, patch)
		b.Lines = appendOutline(b.Lines, patch)

		if p.ShowRays {
			b.Lines = appendRays(b.Lines, patch)
		}
		if p.ShowCenter {
			c := patch.Center()
			b.Lines = appendCross(b.Lines, c, CenterMarkSize, CenterColor)
			b.Lines = appendLine(b.Lines, dome.P(0, 0, 0), c, CenterRayColor)
		}
	}

	for _, a := range f.Arcs {
		if f.InnerVisible {
			b.Lines = appendPolyline(b.Lines, a.Inner, ArcInnerColor)
		}
		b.Lines = appendPolyline(b.Lines, a.Outer, ArcOuterColor)
	}
}

func appendVertex(dst []float32, p dome.Point, c Color) []float32 {
	v := p.Float32()
	return append(dst, v[0], v[1], v[2], c[0], c[1], c[2], c[3])
}

// appendPatch adds the quad P1 P2 P4 P3 as two triangles.
func appendPatch(dst []float32, patch dome.Patch) []float32 {
	q := patch.Vertices()
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		dst = appendVertex(dst, q[i], FillColor)
	}
	return dst
}

// appendOutline adds the closed quad outline as four segments.
func appendOutline(dst []float32, patch dome.Patch) []float32 {
	q := patch.Vertices()
	for i := range q {
		dst = appendLine(dst, q[i], q[(i+1)%len(q)], OutlineColor)
	}
	return dst
}

// appendRays adds one ray from the origin to each corner, the cone that
// subtends the patch's solid angle.
func appendRays(dst []float32, patch dome.Patch) []float32 {
	for _, v := range [4]dome.Point{patch.P1, patch.P2, patch.P3, patch.P4} {
		dst = appendLine(dst, dome.P(0, 0, 0), v, RayColor)
	}
	return dst
}

func appendLine(dst []float32, a, b dome.Point, c Color) []float32 {
	dst = appendVertex(dst, a, c)
	return appendVertex(dst, b, c)
}

func appendCross(dst []float32, at dome.Point, size float64, c Color) []float32 {
	dst = appendLine(dst, dome.P(at.X-size, at.Y, at.Z), dome.P(at.X+size, at.Y, at.Z), c)
	dst = appendLine(dst, dome.P(at.X, at.Y-size, at.Z), dome.P(at.X, at.Y+size, at.Z), c)
	return appendLine(dst, dome.P(at.X, at.Y, at.Z-size), dome.P(at.X, at.Y, at.Z+size), c)
}

// appendPolyline adds consecutive points as independent segments.
func appendPolyline(dst []float32, pts []dome.Point, c Color) []float32 {
	for i := 1; i < len(pts); i++ {
		dst = appendLine(dst, pts[i-1], pts[i], c)
	}
	return dst
}

// appendScreen adds the square that backs the dome. Its side is √2·r, so its
// corners sit on the base circle.
func appendScreen(dst []float32, radius float64) []float32 {
	h := gomath.Sqrt2 * radius / 2
	a := dome.P(-h, -h, ScreenDepth)
	b := dome.P(h, -h, ScreenDepth)
	c := dome.P(h, h, ScreenDepth)
	d := dome.P(-h, h, ScreenDepth)
	for _, p := range [6]dome.Point{a, b, c, a, c, d} {
		dst = appendVertex(dst, p, ScreenColor)
	}
	return dst
}
