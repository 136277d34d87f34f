package ui

import (
	"image/color"
	"math"
	"sort"

	"github.com/ingyamilmolinar/lanechart/core/geometry"
)

const (
	TagNote       = "note"
	TagBar        = "bar"
	TagSection    = "section"
	TagBackground = "background"
)

// Mesh is a flat shape lying in the plane z = Position.Z. Shape points are
// local to Position.
type Mesh struct {
	ID       string
	Tag      string
	Shape    geometry.Shape
	Position Vec3
	Color    color.RGBA
}

// WorldPoints returns the outline in world space.
func (m *Mesh) WorldPoints() []Vec3 {
	pts := make([]Vec3, len(m.Shape.Points))
	for i, p := range m.Shape.Points {
		pts[i] = Vec3{p.X + m.Position.X, p.Y + m.Position.Y, m.Position.Z}
	}
	return pts
}

// hit returns the ray parameter where r crosses the mesh, or -1.
func (m *Mesh) hit(r Ray) float64 {
	if r.Dir.Z == 0 {
		return -1
	}
	t := (m.Position.Z - r.Origin.Z) / r.Dir.Z
	if t <= 0 {
		return -1
	}
	p := r.At(t)
	if !m.Shape.Contains(p.X-m.Position.X, p.Y-m.Position.Y) {
		return -1
	}
	return t
}

// Line is a straight segment drawn one pixel wide.
type Line struct {
	A, B  Vec3
	Color color.RGBA
}

// Scene is the ordered set of things drawn every frame.
type Scene struct {
	meshes []*Mesh
	lines  []Line
}

func NewScene() *Scene { return &Scene{} }

func (s *Scene) Add(ms ...*Mesh) {
	for _, m := range ms {
		if m != nil {
			s.meshes = append(s.meshes, m)
		}
	}
}

func (s *Scene) AddLine(l Line) { s.lines = append(s.lines, l) }

// Clear drops every mesh and line.
func (s *Scene) Clear() {
	s.meshes = s.meshes[:0]
	s.lines = s.lines[:0]
}

func (s *Scene) Meshes() []*Mesh { return s.meshes }
func (s *Scene) Lines() []Line { return s.lines }

// Count returns how many meshes carry tag.
func (s *Scene) Count(tag string) int {
	n := 0
	for _, m := range s.meshes {
		if m.Tag == tag {
			n++
		}
	}
	return n
}

// Intersect returns the nearest mesh tagged tag that r passes
// through, or nil. Ties go to the mesh added first.
func (s *Scene) Intersect(r Ray, tag string) *Mesh {
	var best *Mesh
	bestT := math.Inf(1)
	for _, m := range s.meshes {
		if m.Tag != tag {
			continue
		}
		if t := m.hit(r); t > 0 && t < bestT {
			best, bestT = m, t
		}
	}
	return best
}

// DrawOrder returns every mesh back to front. Ties keep insertion order.
func (s *Scene) DrawOrder() []*Mesh {
	out := make([]*Mesh, len(s.meshes))
	copy(out, s.meshes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position.Z < out[j].Position.Z })
	return out
}
