// Package desktop runs the dome viewer in an SDL2 window.
package desktop

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/app"
	"github.com/Faultbox/domeview/internal/config"
	"github.com/Faultbox/domeview/internal/engine/camera"
	"github.com/Faultbox/domeview/internal/engine/debug"
	"github.com/Faultbox/domeview/internal/engine/input"
	"github.com/Faultbox/domeview/internal/engine/renderer"
	"github.com/Faultbox/domeview/internal/engine/window"
	"github.com/Faultbox/domeview/internal/logger"
	"github.com/Faultbox/domeview/internal/scene"
)

// Viewer owns the window and everything drawn into it.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.CanvasCamera
	pipeline *app.Pipeline
	shots    *debug.ScreenshotCapture

	screenshotPending bool
}

// New opens the window and prepares the pipeline.
func New(cfg *config.Config) (*Viewer, error) {
	pipeline, err := app.NewPipeline(cfg)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:      cfg,
		pipeline: pipeline,
		input:    input.New(),
		camera:   camera.NewCanvasCamera(cfg.Window.Width, cfg.Window.Height),
		shots:    debug.NewScreenshotCapture("screenshots", "domeview"),
	}

	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	fbw, fbh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return v, nil
}

// Run loops until the window closes, Esc is pressed or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	var minFrame time.Duration
	if v.cfg.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(v.cfg.Window.FPSLimit)
	}

	frames := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		start := time.Now()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if v.input.Update() {
			v.running = false
			break
		}
		for _, e := range v.input.Events() {
			v.handleEvent(e)
		}

		f := v.pipeline.Step()

		v.renderer.Begin()
		v.renderer.DrawFrame(f, v.camera.ViewProjection())

		if v.screenshotPending {
			v.screenshotPending = false
			v.screenshot()
		}

		v.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			v.pipeline.LogStats(frames)
			frames = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if rest := minFrame - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (v *Viewer) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		v.camera.Resize(e.Width, e.Height)
		v.renderer.Resize(v.window.DrawableSize())
		v.pipeline.Resize(e.Width, e.Height)
	case input.EventMouseDown:
		if e.IsPrimary() {
			v.pipeline.PointerDown(e.MouseX, e.MouseY)
		}
	case input.EventMouseMove:
		v.pipeline.PointerMove(e.MouseX, e.MouseY)
	case input.EventMouseUp:
		if e.IsPrimary() {
			v.pipeline.PointerUp()
		}
	case input.EventMouseWheel:
		v.camera.HandleZoom(e.Wheel)
	case input.EventKeyDown:
		a := actionFor(e.Key, e.Repeat)
		if a == scene.ActionScreenshot {
			v.screenshotPending = true
			return
		}
		if v.pipeline.Handle(a) {
			v.running = false
		}
	}
}

// screenshot reads the back buffer before it is swapped.
func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	name, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
