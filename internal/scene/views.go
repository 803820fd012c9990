package scene

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/Faultbox/domeview/internal/config"
	"github.com/Faultbox/domeview/internal/view"
)

// BuildController creates the views declared in cfgs and binds each to its
// region in declaration order. width is the canvas width used by half-screen
// regions.
func BuildController(cfgs []config.ViewConfig, width float64) (*view.Controller, error) {
	ctrl := view.NewController()
	var errs []error
	for i, vc := range cfgs {
		if ctrl.Lookup(vc.Name) != nil {
			errs = append(errs, fmt.Errorf("views[%d] %s: duplicate name", i, vc.Name))
			continue
		}
		v, err := newView(vc)
		if err != nil {
			errs = append(errs, fmt.Errorf("views[%d] %s: %w", i, vc.Name, err))
			continue
		}
		region, err := NewRegion(vc.Region, width)
		if err != nil {
			errs = append(errs, fmt.Errorf("views[%d] %s: %w", i, vc.Name, err))
			continue
		}
		ctrl.Bind(region, v)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ctrl, nil
}

func newView(vc config.ViewConfig) (*view.DomeView, error) {
	v := view.New(vc.Name, r3.Vector{X: vc.Position[0], Y: vc.Position[1], Z: vc.Position[2]})

	mode, err := view.ParseDragMode(vc.Mode)
	if err != nil {
		return nil, err
	}
	v.Mode = mode

	if vc.Axes != "" {
		axes, err := view.ParseAxes(vc.Axes)
		if err != nil {
			return nil, err
		}
		v.Axes = axes
	}

	if vc.Gains != (config.GainsConfig{}) {
		v.Gains = view.Gains{Pitch: vc.Gains.Pitch, Yaw: vc.Gains.Yaw, Roll: vc.Gains.Roll}
	}
	return v, nil
}

// NewRegion converts a region config into a hit region. Kind none yields a
// nil region, which never matches.
func NewRegion(rc config.RegionConfig, width float64) (view.Region, error) {
	switch rc.Kind {
	case "rect":
		return view.Rect{X: rc.X, Y: rc.Y, W: rc.W, H: rc.H}, nil
	case "circle":
		return view.Circle{CX: rc.CX, CY: rc.CY, R: rc.R}, nil
	case "half":
		switch rc.Side {
		case "left":
			return view.HalfScreen{Width: width, Side: view.Left}, nil
		case "right":
			return view.HalfScreen{Width: width, Side: view.Right}, nil
		}
		return nil, fmt.Errorf("half region side %q", rc.Side)
	case "", "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown region kind %q", rc.Kind)
}
