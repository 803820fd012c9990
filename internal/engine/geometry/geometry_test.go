package geometry

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/domeview/internal/scene"
	"github.com/Faultbox/domeview/pkg/dome"
)

func frame(radius float64, grid int) scene.Frame {
	return scene.Frame{
		Params: scene.Params{Radius: radius, Grid: grid},
		Mesh:   dome.Build(radius, grid),
	}
}

func vertexAt(buf []float32, i int) ([3]float32, Color) {
	o := i * Stride
	return [3]float32{buf[o], buf[o+1], buf[o+2]}, Color{buf[o+3], buf[o+4], buf[o+5], buf[o+6]}
}

func TestBuildCounts(t *testing.T) {
	tests := []struct {
		name      string
		grid      int
		rays      bool
		centers   bool
		screen    bool
		opaque    int32
		triangles int32
		lines     int32
	}{
		{"empty", 0, true, true, true, 6, 0, 0},
		{"plain", 4, false, false, false, 0, 16 * 6, 16 * 8},
		{"rays", 4, true, false, false, 0, 16 * 6, 16 * 16},
		{"centers", 2, false, true, false, 0, 4 * 6, 4 * 16},
		{"screen", 3, false, false, true, 6, 9 * 6, 9 * 8},
	}

	var b Buffers
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frame(100, tt.grid)
			f.Params.ShowRays = tt.rays
			f.Params.ShowCenter = tt.centers
			f.Params.ShowScreen = tt.screen
			Build(f, &b)

			if b.OpaqueCount() != tt.opaque {
				t.Errorf("opaque = %d, want %d", b.OpaqueCount(), tt.opaque)
			}
			if b.TriangleCount() != tt.triangles {
				t.Errorf("triangles = %d, want %d", b.TriangleCount(), tt.triangles)
			}
			if b.LineCount() != tt.lines {
				t.Errorf("lines = %d, want %d", b.LineCount(), tt.lines)
			}
		})
	}
}

func TestBuildPatchTriangles(t *testing.T) {
	f := frame(100, 2)
	var b Buffers
	Build(f, &b)

	patch := f.Mesh.Patches[0]
	want := []dome.Point{patch.P1, patch.P2, patch.P4, patch.P1, patch.P4, patch.P3}
	for i, w := range want {
		pos, col := vertexAt(b.Triangles, i)
		if pos != w.Float32() {
			t.Errorf("vertex %d = %v, want %v", i, pos, w.Float32())
		}
		if col != FillColor {
			t.Errorf("vertex %d color = %v, want fill", i, col)
		}
	}
}

func TestBuildRaysReachEveryCorner(t *testing.T) {
	f := frame(100, 1)
	f.Params.ShowRays = true
	var b Buffers
	Build(f, &b)

	patch := f.Mesh.Patches[0]
	corners := []dome.Point{patch.P1, patch.P2, patch.P3, patch.P4}

	// Four outline segments come first, then one ray per corner.
	if got, want := b.LineCount(), int32(8+2*len(corners)); got != want {
		t.Fatalf("lines = %d, want %d", got, want)
	}
	for i, w := range corners {
		start, col := vertexAt(b.Lines, 8+2*i)
		end, _ := vertexAt(b.Lines, 9+2*i)
		if start != [3]float32{} {
			t.Errorf("ray %d start = %v, want origin", i, start)
		}
		if end != w.Float32() {
			t.Errorf("ray %d end = %v, want %v", i, end, w.Float32())
		}
		if col != RayColor {
			t.Errorf("ray %d color = %v", i, col)
		}
	}
}

func TestBuildCenterRay(t *testing.T) {
	f := frame(100, 1)
	f.Params.ShowCenter = true
	var b Buffers
	Build(f, &b)

	// Outline, then the three cross segments, then the center ray.
	start, col := vertexAt(b.Lines, 14)
	end, _ := vertexAt(b.Lines, 15)
	if start != [3]float32{} {
		t.Errorf("center ray start = %v, want origin", start)
	}
	if end != f.Mesh.Patches[0].Center().Float32() {
		t.Errorf("center ray end = %v, want patch center", end)
	}
	if col != CenterRayColor {
		t.Errorf("center ray color = %v", col)
	}
}

func TestBuildScreenCorners(t *testing.T) {
	f := frame(100, 0)
	f.Params.ShowScreen = true
	var b Buffers
	Build(f, &b)

	for i := int32(0); i < b.OpaqueCount(); i++ {
		pos, _ := vertexAt(b.Opaque, int(i))
		r := gomath.Hypot(float64(pos[0]), float64(pos[1]))
		if gomath.Abs(r-100) > 1e-3 {
			t.Errorf("corner %d at distance %v, want 100", i, r)
		}
		if pos[2] != float32(ScreenDepth) {
			t.Errorf("corner %d z = %v", i, pos[2])
		}
	}
}

func TestBuildArcsBlink(t *testing.T) {
	arc := dome.NewArc(dome.P(0, 0, 100), 2, 10)
	inner, outer := arc.Sample(4)

	f := frame(100, 0)
	f.Arcs = []scene.ArcPath{{Inner: inner, Outer: outer}}

	var b Buffers
	f.InnerVisible = true
	Build(f, &b)
	if got, want := b.LineCount(), int32(2*(len(inner)-1)+2*(len(outer)-1)); got != want {
		t.Errorf("visible: lines = %d, want %d", got, want)
	}

	f.InnerVisible = false
	Build(f, &b)
	if got, want := b.LineCount(), int32(2*(len(outer)-1)); got != want {
		t.Errorf("hidden: lines = %d, want %d", got, want)
	}
	if _, col := vertexAt(b.Lines, 0); col != ArcOuterColor {
		t.Errorf("first line color = %v, want outer", col)
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(255, 0, 51, 255)
	if c != (Color{1, 0, 0.2, 1}) {
		t.Errorf("RGBA = %v", c)
	}
}
