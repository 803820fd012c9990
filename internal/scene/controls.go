package scene

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/domeview/internal/config"
	"github.com/Faultbox/domeview/pkg/math"
)

// Range is a slider: a value confined to [Min, Max] on a Step grid anchored
// at Min.
type Range struct {
	Min, Max, Step float64
	value          float64
}

// NewRange creates a range from its config and snaps the initial value.
func NewRange(cfg config.RangeConfig) *Range {
	r := &Range{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step}
	r.Set(cfg.Value)
	return r
}

// Value returns the current value.
func (r *Range) Value() float64 {
	return r.value
}

// Int returns the value rounded to the nearest integer.
func (r *Range) Int() int {
	return int(gomath.Round(r.value))
}

// Set clamps v into range and snaps it to the nearest step.
func (r *Range) Set(v float64) {
	if r.Step > 0 {
		v = r.Min + gomath.Round((v-r.Min)/r.Step)*r.Step
	}
	r.value = gomath.Max(r.Min, gomath.Min(r.Max, v))
}

// Nudge moves the value by n steps.
func (r *Range) Nudge(n int) {
	r.Set(r.value + float64(n)*r.Step)
}

func (r *Range) String() string {
	return fmt.Sprintf("%g [%g..%g]", r.value, r.Min, r.Max)
}

// PlaneLock turns the whole scene so a chosen plane faces the viewer.
type PlaneLock int

const (
	PlaneNone PlaneLock = iota
	PlaneXY             // quarter turn about X
	PlaneYZ             // quarter turn about Y
	PlaneXZ             // quarter turn about Z
)

func (p PlaneLock) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return "none"
	}
}

// Matrix returns the scene rotation for the lock.
func (p PlaneLock) Matrix() math.Mat4 {
	const quarter = gomath.Pi / 2
	switch p {
	case PlaneXY:
		return math.RotateX(quarter)
	case PlaneYZ:
		return math.RotateY(quarter)
	case PlaneXZ:
		return math.RotateZ(quarter)
	default:
		return math.Identity()
	}
}

// Params is everything one frame reads from the controls.
type Params struct {
	Radius     float64
	Grid       int
	Extension  float64
	ArcHeight  float64
	ArcSteps   int
	ShowArcs   bool
	ShowRays   bool
	ShowScreen bool
	ShowCenter bool
	Locked     bool
	Plane      PlaneLock
}

// Action is a discrete control input, usually bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionRadiusUp
	ActionRadiusDown
	ActionGridUp
	ActionGridDown
	ActionExtensionUp
	ActionExtensionDown
	ActionToggleArcs
	ActionToggleRays
	ActionToggleScreen
	ActionToggleCenters
	ActionPlaneNone
	ActionPlaneXY
	ActionPlaneYZ
	ActionPlaneXZ
	ActionLock
	ActionRelease
	ActionExportArc
	ActionScreenshot
	ActionToggleDebug
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionRadiusUp:      "radius+",
	ActionRadiusDown:    "radius-",
	ActionGridUp:        "grid+",
	ActionGridDown:      "grid-",
	ActionExtensionUp:   "extension+",
	ActionExtensionDown: "extension-",
	ActionToggleArcs:    "arcs",
	ActionToggleRays:    "rays",
	ActionToggleScreen:  "screen",
	ActionToggleCenters: "centers",
	ActionPlaneNone:     "plane-none",
	ActionPlaneXY:       "plane-xy",
	ActionPlaneYZ:       "plane-yz",
	ActionPlaneXZ:       "plane-xz",
	ActionLock:          "lock",
	ActionRelease:       "release",
	ActionExportArc:     "export-arc",
	ActionScreenshot:    "screenshot",
	ActionToggleDebug:   "debug",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Controls owns the live control values. Nothing reads them directly during
// a frame; the frame takes a Params snapshot.
type Controls struct {
	Radius    *Range
	Grid      *Range
	Extension *Range

	ShowArcs   bool
	ShowRays   bool
	ShowScreen bool
	ShowCenter bool
	Locked     bool
	Plane      PlaneLock

	arcHeight float64
	arcSteps  int
}

// NewControls creates controls initialized from the config.
func NewControls(cfg *config.Config) *Controls {
	return &Controls{
		Radius:     NewRange(cfg.Dome.Radius),
		Grid:       NewRange(cfg.Dome.Grid),
		Extension:  NewRange(cfg.Arcs.Extension),
		ShowArcs:   cfg.Arcs.Enabled,
		ShowRays:   cfg.Dome.ShowRays,
		ShowScreen: cfg.Dome.ShowScreen,
		ShowCenter: cfg.Dome.ShowCenter,
		Locked:     cfg.Motion.Locked,
		arcHeight:  cfg.Arcs.Height,
		arcSteps:   cfg.Arcs.Steps,
	}
}

// Params snapshots the controls.
func (c *Controls) Params() Params {
	return Params{
		Radius:     c.Radius.Value(),
		Grid:       c.Grid.Int(),
		Extension:  c.Extension.Value(),
		ArcHeight:  c.arcHeight,
		ArcSteps:   c.arcSteps,
		ShowArcs:   c.ShowArcs,
		ShowRays:   c.ShowRays,
		ShowScreen: c.ShowScreen,
		ShowCenter: c.ShowCenter,
		Locked:     c.Locked,
		Plane:      c.Plane,
	}
}

// Apply changes the controls for a control action. It reports whether the
// action was a control action; others are left to the caller.
func (c *Controls) Apply(a Action) bool {
	switch a {
	case ActionRadiusUp:
		c.Radius.Nudge(10)
	case ActionRadiusDown:
		c.Radius.Nudge(-10)
	case ActionGridUp:
		c.Grid.Nudge(1)
	case ActionGridDown:
		c.Grid.Nudge(-1)
	case ActionExtensionUp:
		c.Extension.Nudge(5)
	case ActionExtensionDown:
		c.Extension.Nudge(-5)
	case ActionToggleArcs:
		c.ShowArcs = !c.ShowArcs
	case ActionToggleRays:
		c.ShowRays = !c.ShowRays
	case ActionToggleScreen:
		c.ShowScreen = !c.ShowScreen
	case ActionToggleCenters:
		c.ShowCenter = !c.ShowCenter
	case ActionLock:
		c.Locked = true
	case ActionRelease:
		c.Locked = false
	case ActionPlaneNone:
		c.Plane = PlaneNone
	case ActionPlaneXY:
		c.Plane = PlaneXY
	case ActionPlaneYZ:
		c.Plane = PlaneYZ
	case ActionPlaneXZ:
		c.Plane = PlaneXZ
	default:
		return false
	}
	return true
}
