package view

import (
	"fmt"
	"math"
)

// Region is a screen-space hit area in pixels, origin at the top left.
type Region interface {
	Contains(x, y float64) bool
}

// Rect is an axis-aligned rectangle. The left and top edges are inside, the
// right and bottom edges are not.
type Rect struct {
	X, Y, W, H float64
}

// Contains implements Region.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// Circle contains points strictly closer than R to its center.
type Circle struct {
	CX, CY, R float64
}

// Contains implements Region.
func (c Circle) Contains(x, y float64) bool {
	return math.Hypot(x-c.CX, y-c.CY) < c.R
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%g,%g r%g)", c.CX, c.CY, c.R)
}

// Side picks a half of the screen.
type Side int

const (
	Left Side = iota
	Right
)

// HalfScreen splits the screen at Width/2. The split line belongs to the
// right half.
type HalfScreen struct {
	Width float64
	Side  Side
}

// Contains implements Region.
func (h HalfScreen) Contains(x, _ float64) bool {
	if h.Side == Left {
		return x < h.Width/2
	}
	return x >= h.Width/2
}

func (h HalfScreen) String() string {
	if h.Side == Left {
		return fmt.Sprintf("left-half(%g)", h.Width)
	}
	return fmt.Sprintf("right-half(%g)", h.Width)
}
