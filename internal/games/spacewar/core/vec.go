// Package core is the spacewar round simulation engine.
// It owns entity state, the fixed-step update loop, contact classification,
// the round lifecycle and scoring. This package is UI-agnostic and
// deterministic for a given random source.
package core

import "math"

// Vec2 is a 2D vector in arena units. The arena has y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2  { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64    { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64          { return math.Sqrt(v.LenSq()) }
func (v Vec2) IsNaN() bool           { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// Normalized returns the unit vector in the direction of v, or zero for a zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Heading returns the unit thrust direction for heading h.
// Heading 0 points up; the direction is the rotation plus 90 degrees.
func Heading(h float64) Vec2 {
	return Vec2{X: -math.Sin(h), Y: math.Cos(h)}
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrap maps v into [0, size) with a positive modulo.
func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}
