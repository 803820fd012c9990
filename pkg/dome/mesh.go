package dome

import (
	"math"

	"github.com/golang/geo/s1"
)

// Patch is one quadrilateral face of the dome, spanning polar band I and
// azimuthal band J.
//
// Corners are P1=(θ1,φ1), P2=(θ1,φ2), P3=(θ2,φ1), P4=(θ2,φ2).
type Patch struct {
	I, J           int
	Theta1, Theta2 s1.Angle
	Phi1, Phi2     s1.Angle
	P1, P2, P3, P4 Point
}

// Center returns the mean of the four corners. The result lies inside the
// sphere, not on its surface.
func (p Patch) Center() Point {
	return Mean(p.P1, p.P2, p.P3, p.P4)
}

// PatchCenter is the free-function form of Patch.Center.
func PatchCenter(p Patch) Point {
	return p.Center()
}

// Vertices returns the corners in outline order (P1, P2, P4, P3) so that
// consecutive entries share an edge and the last closes back to the first.
func (p Patch) Vertices() [4]Point {
	return [4]Point{p.P1, p.P2, p.P4, p.P3}
}

// SolidAngle returns the steradians the patch subtends at the dome center.
func (p Patch) SolidAngle() float64 {
	dCos := math.Cos(p.Theta1.Radians()) - math.Cos(p.Theta2.Radians())
	return dCos * (p.Phi2 - p.Phi1).Radians()
}

// Mesh is a tessellated dome of Grid×Grid patches stored row-major by (I, J).
type Mesh struct {
	Radius  float64
	Grid    int
	Patches []Patch
}

// Build tessellates a dome of the given radius into grid×grid patches.
//
// A grid of zero or less yields an empty mesh. A radius of zero or less
// yields a degenerate mesh whose vertices all sit at the origin.
func Build(radius float64, grid int) Mesh {
	if grid <= 0 {
		return Mesh{Radius: radius}
	}
	r := radius
	if r < 0 {
		r = 0
	}

	patches := make([]Patch, 0, grid*grid)
	for i := 0; i < grid; i++ {
		theta1 := bandAngle(i, grid, DomeTheta)
		theta2 := bandAngle(i+1, grid, DomeTheta)
		for j := 0; j < grid; j++ {
			phi1 := bandAngle(j, grid, FullPhi)
			phi2 := bandAngle(j+1, grid, FullPhi)
			patches = append(patches, Patch{
				I: i, J: j,
				Theta1: theta1, Theta2: theta2,
				Phi1: phi1, Phi2: phi2,
				P1: SpherePoint(r, theta1, phi1),
				P2: SpherePoint(r, theta1, phi2),
				P3: SpherePoint(r, theta2, phi1),
				P4: SpherePoint(r, theta2, phi2),
			})
		}
	}

	return Mesh{Radius: radius, Grid: grid, Patches: patches}
}

// At returns patch (i, j).
func (m Mesh) At(i, j int) (Patch, bool) {
	if i < 0 || j < 0 || i >= m.Grid || j >= m.Grid {
		return Patch{}, false
	}
	return m.Patches[i*m.Grid+j], true
}

// Len returns the number of patches.
func (m Mesh) Len() int {
	return len(m.Patches)
}

// SolidAngle sums the patch solid angles. A non-empty dome subtends 2π.
func (m Mesh) SolidAngle() float64 {
	var total float64
	for _, p := range m.Patches {
		total += p.SolidAngle()
	}
	return total
}
