package dome

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Arc is a parabolic fountain trajectory launched from the dome center
// toward a target, continuing past it to Extension times its distance.
// The parabolic lift is applied along +Z and peaks at t = 0.5.
type Arc struct {
	Target    Point
	Extension float64
	Height    float64
}

// NewArc creates an arc toward target. Extensions below 1 are raised to 1 so
// the arc always reaches the target.
func NewArc(target Point, extension, height float64) Arc {
	if extension < 1 {
		extension = 1
	}
	return Arc{Target: target, Extension: extension, Height: height}
}

// End returns the extended endpoint.
func (a Arc) End() Point {
	return Point{a.Target.Mul(a.Extension)}
}

// At evaluates the arc at parameter t in [0, 1].
func (a Arc) At(t float64) Point {
	p := a.End().Mul(t)
	p.Z += a.Height * 4 * t * (1 - t)
	return Point{p}
}

// SurfaceT is the parameter at which the linear part of the arc reaches the
// target.
func (a Arc) SurfaceT() float64 {
	return 1 / a.Extension
}

// Sample evaluates the arc at steps+1 evenly spaced parameters and splits the
// samples into the part inside the dome (t < SurfaceT) and the part outside
// (t > SurfaceT). Both parts also carry the point at SurfaceT, so the two
// polylines meet on the dome surface.
func (a Arc) Sample(steps int) (inner, outer []Point) {
	if steps < 1 {
		steps = 1
	}
	ts := a.SurfaceT()
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		switch {
		case t < ts:
			inner = append(inner, a.At(t))
		case t > ts:
			outer = append(outer, a.At(t))
		}
	}
	surface := a.At(ts)
	inner = append(inner, surface)
	outer = append([]Point{surface}, outer...)
	return inner, outer
}

// Polynomial is the closed form of an arc:
//
//	x(t) = X·t
//	y(t) = Y·t
//	z(t) = Z1·t − Z2·t²
type Polynomial struct {
	X, Y   float64
	Z1, Z2 float64
}

// Polynomial returns the closed form of the arc.
func (a Arc) Polynomial() Polynomial {
	end := a.End()
	return Polynomial{
		X:  end.X,
		Y:  end.Y,
		Z1: end.Z + 4*a.Height,
		Z2: 4 * a.Height,
	}
}

// Eval evaluates the polynomial at t.
func (p Polynomial) Eval(t float64) r3.Vector {
	return r3.Vector{X: p.X * t, Y: p.Y * t, Z: p.Z1*t - p.Z2*t*t}
}

// String formats the polynomial one component per line.
func (p Polynomial) String() string {
	return fmt.Sprintf("x(t) = %.2f * t\ny(t) = %.2f * t\nz(t) = (%.2f) * t - %.2f * t^2",
		p.X, p.Y, p.Z1, p.Z2)
}

// CenterArc builds the arc aimed at the middle cell of a grid×grid dome,
// using the cell's midpoint angles rather than its corner mean.
func CenterArc(radius float64, grid int, extension, height float64) Arc {
	if grid <= 0 {
		return NewArc(P(0, 0, radius), extension, height)
	}
	mid := grid / 2
	theta := s1.Angle((float64(mid)+0.5)/float64(grid)) * DomeTheta
	phi := s1.Angle((float64(mid)+0.5)/float64(grid)) * FullPhi
	return NewArc(SpherePoint(radius, theta, phi), extension, height)
}
