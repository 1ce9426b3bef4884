// Package core provides fundamental types and utilities for the spacewar platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps continuous arena coordinates (origin bottom-left, y up)
// onto a block of screen cells (origin top-left, y down).
type Viewport struct {
	ArenaW, ArenaH float64
	Area           Rect
}

// Project converts an arena point to a screen cell.
// ok is false when the point falls outside the arena.
func (v Viewport) Project(x, y float64) (col, row int, ok bool) {
	if v.ArenaW <= 0 || v.ArenaH <= 0 || v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0, false
	}
	if x < 0 || x >= v.ArenaW || y < 0 || y >= v.ArenaH {
		return 0, 0, false
	}
	col = v.Area.X + int(math.Floor(x/v.ArenaW*float64(v.Area.W)))
	row = v.Area.Y + v.Area.H - 1 - int(math.Floor(y/v.ArenaH*float64(v.Area.H)))
	return Clamp(col, v.Area.X, v.Area.Right()-1), Clamp(row, v.Area.Y, v.Area.Bottom()-1), true
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
