// Package dome tessellates a half sphere into quadrilateral patches.
//
// Angles follow the physics convention: theta is the polar angle measured
// from +Z and phi is the azimuth in the XY plane measured from +X. A dome
// covers theta in [0, π/2] and phi in [0, 2π].
package dome

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

const (
	// DomeTheta is the polar extent of a dome.
	DomeTheta = s1.Angle(math.Pi / 2)
	// FullPhi is the azimuthal extent of a dome.
	FullPhi = s1.Angle(2 * math.Pi)
)

// Point is a position in dome-local Cartesian space.
type Point struct {
	r3.Vector
}

// P builds a Point from its coordinates.
func P(x, y, z float64) Point {
	return Point{r3.Vector{X: x, Y: y, Z: z}}
}

// SpherePoint converts spherical coordinates to Cartesian:
//
//	x = r sinθ cosφ
//	y = r sinθ sinφ
//	z = r cosθ
func SpherePoint(r float64, theta, phi s1.Angle) Point {
	st, ct := math.Sincos(theta.Radians())
	sp, cp := math.Sincos(phi.Radians())
	return P(r*st*cp, r*st*sp, r*ct)
}

// Mean returns the coordinate-wise average of pts.
// The zero Point is returned for an empty argument list.
func Mean(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum r3.Vector
	for _, p := range pts {
		sum = sum.Add(p.Vector)
	}
	return Point{sum.Mul(1 / float64(len(pts)))}
}

// Float32 returns the point as a float32 triple for GPU upload.
func (p Point) Float32() [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
}

// bandAngle maps index k of n bands linearly onto [0, extent].
func bandAngle(k, n int, extent s1.Angle) s1.Angle {
	return s1.Angle(float64(k)/float64(n)) * extent
}
