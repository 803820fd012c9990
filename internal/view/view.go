// Package view holds the independently placed dome views and the pointer
// drag handling that reorients them.
package view

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/Faultbox/domeview/pkg/math"
)

// Axes selects which rotation axes a drag may change.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AllAxes = AxisX | AxisY | AxisZ
)

// Has reports whether every axis in o is enabled in a.
func (a Axes) Has(o Axes) bool {
	return a&o == o
}

// ParseAxes parses a string such as "xyz", "xy" or "y".
func ParseAxes(s string) (Axes, error) {
	var a Axes
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'x':
			a |= AxisX
		case 'y':
			a |= AxisY
		case 'z':
			a |= AxisZ
		default:
			return 0, fmt.Errorf("unknown axis %q in %q", r, s)
		}
	}
	return a, nil
}

func (a Axes) String() string {
	var b strings.Builder
	if a.Has(AxisX) {
		b.WriteByte('x')
	}
	if a.Has(AxisY) {
		b.WriteByte('y')
	}
	if a.Has(AxisZ) {
		b.WriteByte('z')
	}
	return b.String()
}

// Orientation holds rotation angles applied in the order X, Y, Z.
type Orientation struct {
	X, Y, Z s1.Angle
}

// DragMode selects what a drag does to a view.
type DragMode int

const (
	// DragRotate turns the view: dy pitches, dx yaws, dx+dy rolls.
	DragRotate DragMode = iota
	// DragPan slides the view in screen space and yaws it with dx.
	DragPan
)

func (m DragMode) String() string {
	switch m {
	case DragRotate:
		return "rotate"
	case DragPan:
		return "pan"
	default:
		return fmt.Sprintf("DragMode(%d)", int(m))
	}
}

// ParseDragMode parses "rotate" or "pan".
func ParseDragMode(s string) (DragMode, error) {
	switch strings.ToLower(s) {
	case "rotate", "":
		return DragRotate, nil
	case "pan":
		return DragPan, nil
	}
	return 0, fmt.Errorf("unknown drag mode %q", s)
}

// Gains convert pixel deltas to radians.
type Gains struct {
	Pitch float64 // per pixel of dy
	Yaw   float64 // per pixel of dx
	Roll  float64 // per pixel of dx+dy
}

// DefaultGains returns the gains the side views use.
func DefaultGains() Gains {
	return Gains{Pitch: 0.01, Yaw: 0.01, Roll: 0.005}
}

// DragState is the per-view drag state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// DomeView is one on-screen rendering of the dome with its own offset and
// orientation. Views live for the whole session.
type DomeView struct {
	Name        string
	Position    r3.Vector
	Orientation Orientation
	Axes        Axes
	Mode        DragMode
	Gains       Gains

	state        DragState
	lastX, lastY float64
}

// New creates a rotating view at pos with all axes enabled.
func New(name string, pos r3.Vector) *DomeView {
	return &DomeView{
		Name:     name,
		Position: pos,
		Axes:     AllAxes,
		Mode:     DragRotate,
		Gains:    DefaultGains(),
	}
}

// State returns the current drag state.
func (v *DomeView) State() DragState {
	return v.state
}

// Begin starts a drag at pointer position (x, y).
func (v *DomeView) Begin(x, y float64) {
	v.state = Dragging
	v.lastX, v.lastY = x, y
}

// Move applies the delta since the last recorded pointer position and
// records (x, y). It does nothing unless a drag is in progress.
func (v *DomeView) Move(x, y float64) bool {
	if v.state != Dragging {
		return false
	}
	dx, dy := x-v.lastX, y-v.lastY
	v.lastX, v.lastY = x, y
	if dx == 0 && dy == 0 {
		return false
	}
	v.Apply(dx, dy)
	return true
}

// End stops the drag.
func (v *DomeView) End() {
	v.state = Idle
}

// Apply updates the view for a pointer delta in screen pixels. Angles
// accumulate without clamping.
func (v *DomeView) Apply(dx, dy float64) {
	g := v.Gains
	switch v.Mode {
	case DragPan:
		v.Position.X += dx
		v.Position.Y += dy
		if v.Axes.Has(AxisY) {
			v.Orientation.Y += s1.Angle(dx * g.Yaw)
		}
	default:
		if v.Axes.Has(AxisX) {
			v.Orientation.X += s1.Angle(dy * g.Pitch)
		}
		if v.Axes.Has(AxisY) {
			v.Orientation.Y += s1.Angle(dx * g.Yaw)
		}
		if v.Axes.Has(AxisZ) {
			v.Orientation.Z += s1.Angle((dx + dy) * g.Roll)
		}
	}
}

// Model returns the view's model matrix: translate, then rotate X, Y, Z.
func (v *DomeView) Model() math.Mat4 {
	o := v.Orientation
	t := math.Translate(float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z))
	return t.Mul(math.RotateXYZ(float32(o.X.Radians()), float32(o.Y.Radians()), float32(o.Z.Radians())))
}
