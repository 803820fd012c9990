package view

import (
	"go.uber.org/zap"

	"github.com/Faultbox/domeview/internal/logger"
)

// Binding ties a hit region to the view it drags. A nil Region never matches,
// which leaves the view fixed.
type Binding struct {
	Region Region
	View   *DomeView
}

// Controller routes pointer gestures to views.
//
// Bindings are tested in declaration order on pointer-down and the first
// region containing the pointer wins, so overlapping regions resolve to the
// earlier binding. A gesture belongs to one view from pointer-down to
// pointer-up.
type Controller struct {
	bindings []Binding
	views    []*DomeView
	active   *DomeView
}

// NewController creates a controller with the given bindings.
func NewController(bindings ...Binding) *Controller {
	c := &Controller{}
	for _, b := range bindings {
		c.Bind(b.Region, b.View)
	}
	return c
}

// Bind appends a binding with the lowest priority so far.
func (c *Controller) Bind(region Region, v *DomeView) {
	c.bindings = append(c.bindings, Binding{Region: region, View: v})
	for _, known := range c.views {
		if known == v {
			return
		}
	}
	c.views = append(c.views, v)
}

// PointerDown attributes a press at (x, y) to the first matching view and
// starts its drag. It reports false when no region matches.
func (c *Controller) PointerDown(x, y float64) (*DomeView, bool) {
	if c.active != nil {
		c.active.End()
		c.active = nil
	}
	for _, b := range c.bindings {
		if b.Region == nil || !b.Region.Contains(x, y) {
			continue
		}
		b.View.Begin(x, y)
		c.active = b.View
		logger.Debug("drag begin",
			zap.String("view", b.View.Name),
			zap.Float64("x", x),
			zap.Float64("y", y),
		)
		return b.View, true
	}
	return nil, false
}

// PointerMove forwards a pointer move to the active view, if any.
func (c *Controller) PointerMove(x, y float64) bool {
	if c.active == nil {
		return false
	}
	return c.active.Move(x, y)
}

// PointerUp ends the current gesture wherever the pointer is.
func (c *Controller) PointerUp() {
	if c.active == nil {
		return
	}
	c.active.End()
	logger.Debug("drag end",
		zap.String("view", c.active.Name),
		zap.Float64("rotX", c.active.Orientation.X.Radians()),
		zap.Float64("rotY", c.active.Orientation.Y.Radians()),
		zap.Float64("rotZ", c.active.Orientation.Z.Radians()),
	)
	c.active = nil
}

// Active returns the view being dragged, or nil.
func (c *Controller) Active() *DomeView {
	return c.active
}

// Views returns every bound view in declaration order.
func (c *Controller) Views() []*DomeView {
	return c.views
}

// Lookup finds a view by name.
func (c *Controller) Lookup(name string) *DomeView {
	for _, v := range c.views {
		if v.Name == name {
			return v
		}
	}
	return nil
}
