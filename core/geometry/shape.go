// Package geometry builds the 2D outlines the viewer extrudes into flat
// meshes: note bodies, hold bars, swipe arrows and section discs.
package geometry

import (
	"math"
)

// CurveSegments is the number of straight segments a quadratic corner is
// flattened into.
const CurveSegments = 4

type Vec2 struct{ X, Y float64 }

// Shape is a closed outline. The last point connects back to the first.
type Shape struct {
	Points []Vec2
}

func (s Shape) clone() Shape {
	pts := make([]Vec2, len(s.Points))
	copy(pts, s.Points)
	return Shape{Points: pts}
}

// Bounds returns the axis-aligned bounding box.
func (s Shape) Bounds() (minX, minY, maxX, maxY float64) {
	if len(s.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

// Center moves the shape so its bounding box is centred on the origin.
func (s Shape) Center() Shape {
	minX, minY, maxX, maxY := s.Bounds()
	return s.Translate(-(minX+maxX)/2, -(minY+maxY)/2)
}

func (s Shape) Translate(dx, dy float64) Shape {
	out := s.clone()
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

func (s Shape) Scale(sx, sy float64) Shape {
	out := s.clone()
	for i := range out.Points {
		out.Points[i].X *= sx
		out.Points[i].Y *= sy
	}
	return out
}

// Rotate turns the shape by theta radians around the origin.
func (s Shape) Rotate(theta float64) Shape {
	sin, cos := math.Sincos(theta)
	out := s.clone()
	for i, p := range s.Points {
		out.Points[i] = Vec2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	return out
}

// Contains reports whether (x, y) is inside the outline (even-odd rule).
func (s Shape) Contains(x, y float64) bool {
	in := false
	n := len(s.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := s.Points[i], s.Points[j]
		if (a.Y > y) != (b.Y > y) {
			cross := (b.X-a.X)*(y-a.Y)/(b.Y-a.Y) + a.X
			if x < cross {
				in = !in
			}
		}
	}
	return in
}

/* ─── path builder ─── */

type pathBuilder struct {
	pts []Vec2
}

func (b *pathBuilder) moveTo(x, y float64) { b.pts = append(b.pts[:0], Vec2{x, y}) }
func (b *pathBuilder) lineTo(x, y float64) { b.pts = append(b.pts, Vec2{x, y}) }

// quadTo flattens a quadratic Bézier from the current point.
func (b *pathBuilder) quadTo(cx, cy, x, y float64) {
	p0 := b.pts[len(b.pts)-1]
	for i := 1; i <= CurveSegments; i++ {
		t := float64(i) / CurveSegments
		mt := 1 - t
		b.pts = append(b.pts, Vec2{
			X: mt*mt*p0.X + 2*mt*t*cx + t*t*x,
			Y: mt*mt*p0.Y + 2*mt*t*cy + t*t*y,
		})
	}
}

// shape closes the path, dropping a trailing point equal to the first.
func (b *pathBuilder) shape() Shape {
	pts := b.pts
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	out := make([]Vec2, len(pts))
	copy(out, pts)
	return Shape{Points: out}
}

// Capsule returns the rounded rectangle used for note bodies. It spans
// x in [-width/2, width/2] and y in [-height/2, length-height/2], so a
// length equal to height gives a plain rounded box centred on the origin.
func Capsule(length, width, height, radius float64) Shape {
	hw, hh := width/2, height/2
	top := length - hh
	var b pathBuilder
	b.moveTo(-hw+radius, -hh)
	b.lineTo(hw-radius, -hh)
	b.quadTo(hw, -hh, hw, -hh+radius)
	b.lineTo(hw, top-radius)
	b.quadTo(hw, top, hw-radius, top)
	b.lineTo(-hw+radius, top)
	b.quadTo(-hw, top, -hw, top-radius)
	b.lineTo(-hw, -hh+radius)
	b.quadTo(-hw, -hh, -hw+radius, -hh)
	return b.shape()
}

// Rect returns a width×height rectangle centred on the origin.
func Rect(width, height float64) Shape {
	hw, hh := width/2, height/2
	return Shape{Points: []Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}}
}

// Disc approximates a circle of radius r.
func Disc(r float64, segments int) Shape {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return Shape{Points: pts}
}
