// Package geom provides the small geometric and scalar helpers shared by the
// terrain pipeline: origin-centered rectangles over gonum's planar vectors,
// range mapping, and per-vertex array utilities.
package geom

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	Min, Max r2.Vec
}

// RectFromSize returns a rectangle of the given size centered on the origin.
func RectFromSize(w, h float64) Rect {
	return Rect{
		Min: r2.Vec{X: -w / 2, Y: -h / 2},
		Max: r2.Vec{X: w / 2, Y: h / 2},
	}
}

// W returns the rectangle width.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the rectangle height.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle center point.
func (r Rect) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(r.Min, r.Max))
}

// Contains reports whether p lies inside the rectangle (inclusive).
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Expand returns the rectangle grown by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	m := r2.Vec{X: margin, Y: margin}
	return Rect{Min: r2.Sub(r.Min, m), Max: r2.Add(r.Max, m)}
}

// Scaled returns a rectangle with the same center and the size multiplied by f.
func (r Rect) Scaled(f float64) Rect {
	c := r.Center()
	half := r2.Scale(f*0.5, r2.Vec{X: r.W(), Y: r.H()})
	return Rect{Min: r2.Sub(c, half), Max: r2.Add(c, half)}
}

// Corners returns the four rectangle corners in min-x/min-y, max-x/min-y,
// max-x/max-y, min-x/max-y order.
func (r Rect) Corners() [4]r2.Vec {
	return [4]r2.Vec{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}
