// Package core provides the simulation primitives shared by the game and the
// platform: geometry, input frames, the screen buffer, pools and tick timers.
// It has no external dependencies (no Bubble Tea) so game logic stays pure.
package core

import "math"

// Vec is a 2D vector in world pixels (or pixels per second for velocities).
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length and false when v has zero length.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// Box is an axis-aligned bounding box in world space (top-left origin).
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAround returns the box of size w×h centered on c.
func BoxAround(c Vec, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Body is a moving entity: a center position, a velocity and a size.
type Body struct {
	Pos  Vec
	Vel  Vec
	W, H float64
}

// Integrate moves the body by its velocity over dt seconds.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Bounds returns the body's collision box.
func (b Body) Bounds() Box {
	return BoxAround(b.Pos, b.W, b.H)
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = Vec{}
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
