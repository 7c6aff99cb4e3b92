// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// AddInPlace adds o to v.
func (v *Vec2) AddInPlace(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns the unit vector in v's direction.
// A zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return v
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Quad is an axis-aligned rectangle described by its center and full size.
type Quad struct {
	Pos  Vec2 // Center
	Size Vec2 // Full width and height
}

// NewQuad creates a quad centered at pos.
// It panics if either dimension is not positive: a degenerate quad is a
// programming error, not a runtime condition.
func NewQuad(pos, size Vec2) Quad {
	q := Quad{Pos: pos, Size: size}
	if !q.Valid() {
		panic(fmt.Sprintf("core: invalid quad size %vx%v", size.X, size.Y))
	}
	return q
}

// Valid reports whether both dimensions are positive.
func (q Quad) Valid() bool {
	return q.Size.X > 0 && q.Size.Y > 0
}

// Top returns the y-coordinate of the top edge (y grows upward).
func (q Quad) Top() float32 {
	return q.Pos.Y + q.Size.Y/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (q Quad) Bottom() float32 {
	return q.Pos.Y - q.Size.Y/2
}

// Left returns the x-coordinate of the left edge.
func (q Quad) Left() float32 {
	return q.Pos.X - q.Size.X/2
}

// Right returns the x-coordinate of the right edge.
func (q Quad) Right() float32 {
	return q.Pos.X + q.Size.X/2
}

// Intersects returns true if this quad overlaps another.
// Edges that exactly touch do not count as overlap.
func (q Quad) Intersects(other Quad) bool {
	dx := AbsF32(q.Pos.X - other.Pos.X)
	dy := AbsF32(q.Pos.Y - other.Pos.Y)
	return dx < (q.Size.X+other.Size.X)/2 && dy < (q.Size.Y+other.Size.Y)/2
}

// Rect represents an axis-aligned box in integer screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// ClampF32 restricts a float32 value to be within [min, max].
func ClampF32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AbsF32 returns the absolute value of a float32.
func AbsF32(x float32) float32 {
	return float32(math.Abs(float64(x)))
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
