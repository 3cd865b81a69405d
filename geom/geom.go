// Package geom holds the float32 vector and rectangle types shared by the
// layout engine, the font faces and the painters.
package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D point or size in window pixels.
type Vector2 struct {
	X float32
	Y float32
}

// Vec returns a Vector2.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2   { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2   { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2   { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Neg() Vector2            { return Vector2{-v.X, -v.Y} }
func (v Vector2) IsZero() bool            { return v.X == 0 && v.Y == 0 }
func (v Vector2) String() string          { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
func (v Vector2) Equal(o Vector2) bool    { return v.X == o.X && v.Y == o.Y }
func (v Vector2) Less(o Vector2) bool     { return v.X < o.X && v.Y < o.Y }

// Floor rounds both components down.
func (v Vector2) Floor() Vector2 {
	return Vector2{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// Max returns the component-wise maximum.
func (v Vector2) Max(o Vector2) Vector2 {
	return Vector2{max(v.X, o.X), max(v.Y, o.Y)}
}

// Min returns the component-wise minimum.
func (v Vector2) Min(o Vector2) Vector2 {
	return Vector2{min(v.X, o.X), min(v.Y, o.Y)}
}

// Clamp limits each component to [lo, hi].
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return v.Max(lo).Min(hi)
}

// Rect is an axis-aligned rectangle. Max is exclusive for area and
// inclusive for Contains, matching the hit-test rules of the toolkit.
type Rect struct {
	Min Vector2
	Max Vector2
}

// RectFrom builds a rect from a position and a size.
func RectFrom(pos, size Vector2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Size returns Max - Min.
func (r Rect) Size() Vector2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// SetPosition moves the rect so its floored Min is pos, keeping the size.
func (r *Rect) SetPosition(pos Vector2) {
	size := r.Size()
	r.Min = pos.Floor()
	r.Max = r.Min.Add(size)
}

// SetSize resizes the rect from Min, flooring the far edge.
func (r *Rect) SetSize(size Vector2) {
	r.Max = r.Min.Add(size).Floor()
}

// Move translates the rect by delta.
func (r Rect) Move(delta Vector2) Rect {
	return Rect{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether the two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X && r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Intersection returns the overlapping area, or an empty rect at r.Min.
func (r Rect) Intersection(o Rect) Rect {
	res := Rect{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
	if res.Max.X < res.Min.X || res.Max.Y < res.Min.Y {
		return Rect{Min: r.Min, Max: r.Min}
	}
	return res
}

// Expand grows the rect outward by the given edges (left/top in Min, right/bottom in Max).
func (r Rect) Expand(edges Rect) Rect {
	return Rect{Min: r.Min.Sub(edges.Min), Max: r.Max.Add(edges.Max)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v - %v]", r.Min, r.Max)
}
