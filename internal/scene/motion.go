package scene

import (
	"fmt"
	gomath "math"

	"github.com/golang/geo/r3"

	"github.com/Faultbox/domeview/internal/config"
)

// Pattern is how an unlocked dome drifts.
type Pattern int

const (
	PatternNone Pattern = iota
	// PatternBounce moves along x at Speed and along y at half Speed,
	// reversing when |x| passes Bound.
	PatternBounce
	// PatternOrbit follows (sin t, cos t)·OrbitRadius with t advancing by
	// OrbitRate per frame.
	PatternOrbit
)

// ParsePattern parses none, bounce or orbit.
func ParsePattern(s string) (Pattern, error) {
	switch s {
	case "", "none":
		return PatternNone, nil
	case "bounce":
		return PatternBounce, nil
	case "orbit":
		return PatternOrbit, nil
	}
	return 0, fmt.Errorf("unknown motion pattern %q", s)
}

func (p Pattern) String() string {
	switch p {
	case PatternBounce:
		return "bounce"
	case PatternOrbit:
		return "orbit"
	default:
		return "none"
	}
}

// Motion is the shared offset of every dome. Lock freezes the offset where
// it is; Release resumes drifting from there.
type Motion struct {
	pattern     Pattern
	speed       float64
	bound       float64
	orbitRadius float64
	orbitRate   float64

	offset r3.Vector
	t      float64
	locked bool
}

// NewMotion creates a motion from its config.
func NewMotion(cfg config.MotionConfig) (*Motion, error) {
	p, err := ParsePattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	m := &Motion{
		pattern:     p,
		speed:       cfg.Speed,
		bound:       cfg.Bound,
		orbitRadius: cfg.OrbitRadius,
		orbitRate:   cfg.OrbitRate,
		locked:      cfg.Locked,
	}
	if p == PatternOrbit {
		m.offset = m.orbitAt(0)
	}
	return m, nil
}

// Step advances one frame unless locked and returns the offset.
func (m *Motion) Step() r3.Vector {
	if m.locked {
		return m.offset
	}
	switch m.pattern {
	case PatternBounce:
		m.offset.X += m.speed
		m.offset.Y += m.speed * 0.5
		if m.offset.X > m.bound || m.offset.X < -m.bound {
			m.speed = -m.speed
		}
	case PatternOrbit:
		m.t += m.orbitRate
		m.offset = m.orbitAt(m.t)
	}
	return m.offset
}

func (m *Motion) orbitAt(t float64) r3.Vector {
	s, c := gomath.Sincos(t)
	return r3.Vector{X: s * m.orbitRadius, Y: c * m.orbitRadius}
}

// Lock freezes the current offset.
func (m *Motion) Lock() {
	m.locked = true
}

// Release resumes drifting.
func (m *Motion) Release() {
	m.locked = false
}

// Locked reports whether the offset is frozen.
func (m *Motion) Locked() bool {
	return m.locked
}

// Offset returns the current offset without advancing.
func (m *Motion) Offset() r3.Vector {
	return m.offset
}

// Pattern returns the drift pattern.
func (m *Motion) Pattern() Pattern {
	return m.pattern
}
