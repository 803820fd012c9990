// Package camera provides the fixed canvas camera the dome views are drawn
// through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/domeview/pkg/math"
)

// DefaultFovY is the vertical field of view in radians.
const DefaultFovY = math32.Pi / 3

// CanvasCamera looks down -z at the origin from +z, with x to the right and
// y pointing down the screen. At the default distance a point at (w/2, h/2, 0)
// lands on the bottom-right corner of the window, so pixel offsets and world
// units agree on the z = 0 plane.
type CanvasCamera struct {
	Width, Height float32
	FovY          float32

	Distance    float32
	MinDistance float32
	MaxDistance float32

	ZoomSensitivity float32
}

// NewCanvasCamera creates a camera for a window of the given size.
func NewCanvasCamera(width, height int) *CanvasCamera {
	c := &CanvasCamera{
		Width:           float32(width),
		Height:          float32(height),
		FovY:            DefaultFovY,
		ZoomSensitivity: 0.1,
	}
	c.Distance = c.DefaultDistance()
	c.MinDistance = c.Distance * 0.25
	c.MaxDistance = c.Distance * 4
	return c
}

// DefaultDistance is the eye distance at which world units match pixels.
func (c *CanvasCamera) DefaultDistance() float32 {
	return c.Height / 2 / math32.Tan(c.FovY/2)
}

// Aspect returns width over height.
func (c *CanvasCamera) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return c.Width / c.Height
}

// Resize keeps the zoom factor while adapting to a new window size.
func (c *CanvasCamera) Resize(width, height int) {
	zoom := c.Distance / c.DefaultDistance()
	c.Width, c.Height = float32(width), float32(height)
	base := c.DefaultDistance()
	c.Distance = base * zoom
	c.MinDistance = base * 0.25
	c.MaxDistance = base * 4
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *CanvasCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Reset restores the default distance.
func (c *CanvasCamera) Reset() {
	c.Distance = c.DefaultDistance()
}

// ViewMatrix returns the view matrix for this camera.
func (c *CanvasCamera) ViewMatrix() math.Mat4 {
	eye := math.Vec3{Z: c.Distance}
	up := math.Vec3{Y: 1}
	return math.LookAt(eye, math.Vec3{}, up)
}

// ProjectionMatrix returns the perspective projection with y flipped to
// point down the screen.
func (c *CanvasCamera) ProjectionMatrix() math.Mat4 {
	base := c.DefaultDistance()
	proj := math.Perspective(c.FovY, c.Aspect(), base/10, base*10)
	return proj.Mul(math.Scale(1, -1, 1))
}

// ViewProjection returns projection times view.
func (c *CanvasCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
