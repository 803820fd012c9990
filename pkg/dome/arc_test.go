package dome

import (
	"strings"
	"testing"
)

func TestArcEndpoints(t *testing.T) {
	target := P(30, 40, 50)
	a := NewArc(target, 1.5, 20)

	if got := a.At(0); got != (Point{}) {
		t.Errorf("At(0) = %v, want origin", got)
	}
	if got, want := a.At(1), P(45, 60, 75); !nearPoint(got, want) {
		t.Errorf("At(1) = %v, want %v", got, want)
	}

	s := a.At(a.SurfaceT())
	if !near(s.X, target.X) || !near(s.Y, target.Y) {
		t.Errorf("At(SurfaceT()) xy = (%v, %v), want (%v, %v)", s.X, s.Y, target.X, target.Y)
	}
	if s.Z <= target.Z {
		t.Errorf("At(SurfaceT()).Z = %v, want lifted above %v", s.Z, target.Z)
	}
}

func TestArcExtensionFloor(t *testing.T) {
	a := NewArc(P(1, 0, 0), 0.5, 0)
	if a.Extension != 1 {
		t.Errorf("Extension = %v, want 1", a.Extension)
	}
	if a.SurfaceT() != 1 {
		t.Errorf("SurfaceT() = %v, want 1", a.SurfaceT())
	}
}

func TestArcSample(t *testing.T) {
	a := NewArc(P(0, 100, 0), 2, 10)
	inner, outer := a.Sample(20)

	if len(inner) != 11 || len(outer) != 11 {
		t.Fatalf("Sample(20) = %d inner, %d outer, want 11 and 11", len(inner), len(outer))
	}
	if inner[len(inner)-1] != outer[0] {
		t.Errorf("inner end %v != outer start %v", inner[len(inner)-1], outer[0])
	}
}

func TestArcSampleJoinsOffGrid(t *testing.T) {
	a := NewArc(P(0, 0, 100), 1.2, 50)
	inner, outer := a.Sample(20)

	// 1/1.2 falls between samples 16 and 17.
	if len(inner) != 18 || len(outer) != 5 {
		t.Fatalf("Sample(20) = %d inner, %d outer, want 18 and 5", len(inner), len(outer))
	}
	joint := inner[len(inner)-1]
	if joint != outer[0] {
		t.Errorf("inner end %v != outer start %v", joint, outer[0])
	}
	if want := a.At(a.SurfaceT()); joint != want {
		t.Errorf("joint = %v, want %v", joint, want)
	}
}

func TestPolynomialMatchesArc(t *testing.T) {
	a := NewArc(P(12, -7, 33), 1.2, 50)
	poly := a.Polynomial()
	for _, tt := range []float64{0, 0.1, 0.5, 0.83, 1} {
		got := Point{poly.Eval(tt)}
		if want := a.At(tt); !nearPoint(got, want) {
			t.Errorf("Polynomial().Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestPolynomialString(t *testing.T) {
	p := Polynomial{X: 1.5, Y: -2, Z1: 210.256, Z2: 200}
	want := []string{
		"x(t) = 1.50 * t",
		"y(t) = -2.00 * t",
		"z(t) = (210.26) * t - 200.00 * t^2",
	}
	if got := strings.Split(p.String(), "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCenterArc(t *testing.T) {
	a := CenterArc(300, 10, 1.2, 50)
	if got := a.Target.Norm(); !near(got, 300) {
		t.Errorf("CenterArc target radius = %v, want 300", got)
	}

	m := Build(300, 10)
	cell, _ := m.At(5, 5)
	th := a.Target
	if th.Z > cell.P1.Z || th.Z < cell.P3.Z {
		t.Errorf("CenterArc target z = %v outside cell band [%v, %v]", th.Z, cell.P3.Z, cell.P1.Z)
	}
}
