// Package app drives the dome viewer frame by frame. The pipeline here has
// no window; the desktop package feeds it SDL input and draws its frames.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/config"
	"github.com/Faultbox/domeview/internal/logger"
	"github.com/Faultbox/domeview/internal/scene"
)

// Pipeline turns input into frames: pointer gestures go to the view
// controller, actions go to the controls, and Step composes the next frame.
type Pipeline struct {
	cfg      *config.Config
	controls *scene.Controls
	scene    *scene.Scene

	// window size in pixels; regions are declared in canvas pixels
	winW, winH int

	baseLevel string
	debug     bool
}

// NewPipeline builds the views, controls and scene described by cfg.
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	ctrl, err := scene.BuildController(cfg.Views, float64(cfg.Window.Width))
	if err != nil {
		return nil, fmt.Errorf("building views: %w", err)
	}
	motion, err := scene.NewMotion(cfg.Motion)
	if err != nil {
		return nil, fmt.Errorf("building motion: %w", err)
	}

	p := &Pipeline{
		cfg:       cfg,
		controls:  scene.NewControls(cfg),
		scene:     scene.New(ctrl, motion, cfg.Arcs.BlinkRate),
		winW:      cfg.Window.Width,
		winH:      cfg.Window.Height,
		baseLevel: cfg.Logging.Level,
	}

	logger.Info("pipeline ready",
		zap.Int("views", len(ctrl.Views())),
		zap.String("motion", motion.Pattern().String()),
		zap.Float64("radius", p.controls.Radius.Value()),
		zap.Int("grid", p.controls.Grid.Int()),
	)
	return p, nil
}

// Controls returns the live controls.
func (p *Pipeline) Controls() *scene.Controls {
	return p.controls
}

// Scene returns the scene.
func (p *Pipeline) Scene() *scene.Scene {
	return p.scene
}

// Step composes the next frame from a snapshot of the controls.
func (p *Pipeline) Step() scene.Frame {
	return p.scene.Frame(p.controls.Params())
}

// Resize records the window size so pointer positions keep mapping onto the
// configured canvas.
func (p *Pipeline) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.winW, p.winH = width, height
}

// canvas maps a window position into canvas pixels.
func (p *Pipeline) canvas(x, y int) (float64, float64) {
	cx, cy := float64(x), float64(y)
	if p.winW > 0 && p.winW != p.cfg.Window.Width {
		cx *= float64(p.cfg.Window.Width) / float64(p.winW)
	}
	if p.winH > 0 && p.winH != p.cfg.Window.Height {
		cy *= float64(p.cfg.Window.Height) / float64(p.winH)
	}
	return cx, cy
}

// PointerDown starts a drag on the first view whose region holds (x, y).
func (p *Pipeline) PointerDown(x, y int) {
	cx, cy := p.canvas(x, y)
	p.scene.Controller().PointerDown(cx, cy)
}

// PointerMove feeds a pointer position to the active drag.
func (p *Pipeline) PointerMove(x, y int) {
	cx, cy := p.canvas(x, y)
	p.scene.Controller().PointerMove(cx, cy)
}

// PointerUp ends the active drag.
func (p *Pipeline) PointerUp() {
	p.scene.Controller().PointerUp()
}

// Handle applies an action. It returns true when the action asks to quit.
// Screenshot is not handled here since it needs a framebuffer.
func (p *Pipeline) Handle(a scene.Action) bool {
	if p.controls.Apply(a) {
		logger.Debug("control changed",
			zap.Stringer("action", a),
			zap.Stringer("radius", p.controls.Radius),
			zap.Stringer("grid", p.controls.Grid),
			zap.Stringer("extension", p.controls.Extension),
			zap.Stringer("plane", p.controls.Plane),
		)
		return false
	}

	switch a {
	case scene.ActionExportArc:
		poly := p.scene.ExportArc(p.controls.Params())
		logger.Info("center arc\n" + poly.String())
	case scene.ActionToggleDebug:
		p.debug = !p.debug
		if p.debug {
			logger.SetLevel("debug")
		} else {
			logger.SetLevel(p.baseLevel)
		}
		logger.Info("log level changed", zap.String("level", logger.Level()))
	case scene.ActionQuit:
		return true
	}
	return false
}

// LogStats reports mesh cache usage.
func (p *Pipeline) LogStats(frames int) {
	hits, misses := p.scene.Cache().Stats()
	logger.Debug("frame stats",
		zap.Int("fps", frames),
		zap.Uint64("cache_hits", hits),
		zap.Uint64("cache_misses", misses),
		zap.Bool("locked", p.scene.Motion().Locked()),
	)
}
