// Package scene composes each frame of the dome viewer: the tessellation for
// the current controls, the shared drift, and a model matrix per view.
// It does no drawing, so the window and headless runners share it.
package scene

import (
	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/logger"
	"github.com/Faultbox/domeview/internal/view"
	"github.com/Faultbox/domeview/pkg/dome"
	"github.com/Faultbox/domeview/pkg/math"
)

// Draw is one view to render this frame.
type Draw struct {
	View     string
	Model    math.Mat4 // scene matrix times view model
	Dragging bool
}

// ArcPath is a sampled fountain arc split at the dome surface.
type ArcPath struct {
	Inner []dome.Point
	Outer []dome.Point
}

// Frame is the result of one update.
type Frame struct {
	Index  uint64
	Params Params
	Mesh   dome.Mesh
	Offset r3.Vector
	Scene  math.Mat4 // plane lock times drift
	Draws  []Draw
	Arcs   []ArcPath

	// InnerVisible toggles the blinking inner segment of the arcs.
	InnerVisible bool
}

// Scene holds the state that persists across frames.
type Scene struct {
	cache      *dome.Cache
	controller *view.Controller
	motion     *Motion
	blink      int
	frame      uint64

	arcKey arcKey
	arcs   []ArcPath
}

type arcKey struct {
	radius, extension, height float64
	grid, steps               int
}

// New creates a scene. blink is the arc blink period in frames; 0 keeps the
// inner segment always visible.
func New(controller *view.Controller, motion *Motion, blink int) *Scene {
	return &Scene{
		cache:      dome.NewCache(),
		controller: controller,
		motion:     motion,
		blink:      blink,
	}
}

// Controller returns the pointer controller.
func (s *Scene) Controller() *view.Controller {
	return s.controller
}

// Motion returns the drift.
func (s *Scene) Motion() *Motion {
	return s.motion
}

// Cache returns the mesh cache.
func (s *Scene) Cache() *dome.Cache {
	return s.cache
}

// Frame advances one frame and composes it from p.
func (s *Scene) Frame(p Params) Frame {
	switch {
	case p.Locked && !s.motion.Locked():
		s.lock()
	case !p.Locked && s.motion.Locked():
		s.release()
	}

	mesh := s.cache.Get(p.Radius, p.Grid)
	offset := s.motion.Step()

	global := p.Plane.Matrix().Mul(math.Translate(float32(offset.X), float32(offset.Y), float32(offset.Z)))

	f := Frame{
		Index:        s.frame,
		Params:       p,
		Mesh:         mesh,
		Offset:       offset,
		Scene:        global,
		InnerVisible: s.innerVisible(),
	}

	active := s.controller.Active()
	for _, v := range s.controller.Views() {
		f.Draws = append(f.Draws, Draw{
			View:     v.Name,
			Model:    global.Mul(v.Model()),
			Dragging: v == active,
		})
	}

	if p.ShowArcs {
		f.Arcs = s.arcsFor(mesh, p)
	}

	s.frame++
	return f
}

func (s *Scene) innerVisible() bool {
	if s.blink <= 0 {
		return true
	}
	return s.frame%uint64(s.blink) < uint64(s.blink+1)/2
}

// arcsFor samples one arc per patch. Samples are reused while the mesh and
// arc parameters are unchanged.
func (s *Scene) arcsFor(mesh dome.Mesh, p Params) []ArcPath {
	key := arcKey{radius: mesh.Radius, grid: mesh.Grid, extension: p.Extension, height: p.ArcHeight, steps: p.ArcSteps}
	if s.arcs != nil && key == s.arcKey {
		return s.arcs
	}

	arcs := make([]ArcPath, 0, mesh.Len())
	for _, patch := range mesh.Patches {
		a := dome.NewArc(patch.Center(), p.Extension, p.ArcHeight)
		inner, outer := a.Sample(p.ArcSteps)
		arcs = append(arcs, ArcPath{Inner: inner, Outer: outer})
	}
	s.arcKey, s.arcs = key, arcs
	logger.Debug("arcs resampled",
		zap.Int("count", len(arcs)),
		zap.Float64("extension", p.Extension),
		zap.Int("steps", p.ArcSteps))
	return arcs
}

func (s *Scene) lock() {
	s.motion.Lock()
	logger.Info("dome locked", zap.Float64("x", s.motion.Offset().X), zap.Float64("y", s.motion.Offset().Y))
}

func (s *Scene) release() {
	s.motion.Release()
	logger.Info("dome released")
}

// ExportArc returns the closed form of the arc through the middle patch.
func (s *Scene) ExportArc(p Params) dome.Polynomial {
	return dome.CenterArc(p.Radius, p.Grid, p.Extension, p.ArcHeight).Polynomial()
}
