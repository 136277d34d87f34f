package ui

import (
	"math"

	"github.com/google/uuid"
	"github.com/ingyamilmolinar/lanechart/core/geometry"
	"github.com/ingyamilmolinar/lanechart/core/layout"
	"github.com/ingyamilmolinar/lanechart/core/model"
)

const (
	barThickness = 2
	sectionRing  = 4
)

// Note is a chart note with its negotiated length and the meshes that draw
// it. Meshes are rebuilt on every resize and moved every frame.
type Note struct {
	model.Note
	ID           string
	VisualLength float64
	Section      bool

	body *Mesh
	bar  []*Mesh // hit bar and hold line, or the swipe arrow
	ring *Mesh
}

func newNote(n model.Note, visualLength float64, section bool) *Note {
	return &Note{
		Note:         n,
		ID:           uuid.NewString(),
		VisualLength: visualLength,
		Section:      section,
	}
}

// Ticks is the held duration in editor ticks.
func (n *Note) Ticks(cfg layout.Config) float64 { return n.Length * cfg.TicksPerUnit }

// Body returns the mesh used for hit-testing, nil before the first build.
func (n *Note) Body() *Mesh { return n.body }

/* ───────────────────────── primitives ───────────────────────── */

// build creates fresh meshes for the current lane geometry.
func (n *Note) build(cfg layout.Config) {
	x := cfg.LaneX(n.Lane)
	width := cfg.NoteWidth()
	// negotiation can shrink a note to nothing; keep a pickable sliver
	bodyLen := math.Max(n.VisualLength, 2*cfg.CornerRadius)

	n.body = &Mesh{
		ID:       n.ID,
		Tag:      TagNote,
		Shape:    geometry.Capsule(bodyLen, width, cfg.NoteHeight, cfg.CornerRadius),
		Position: Vec3{X: x, Z: 0.1},
		Color:    colNote,
	}

	n.bar = n.bar[:0]
	if n.Swipe != model.SwipeNone {
		arrow, err := geometry.Arrow(int(n.Swipe))
		if err == nil {
			n.bar = append(n.bar, &Mesh{
				ID:       n.ID,
				Tag:      TagBar,
				Shape:    arrow.Center().Scale(1.5, 0.75).Rotate(math.Pi),
				Position: Vec3{X: x, Z: 0.2},
				Color:    colBar,
			})
		}
	} else {
		n.bar = append(n.bar, &Mesh{
			ID:       n.ID,
			Tag:      TagBar,
			Shape:    geometry.Rect(width-cfg.Padding, barThickness),
			Position: Vec3{X: x, Z: 0.2},
			Color:    colBar,
		})
		if n.Held() {
			line := n.VisualLength - cfg.NoteHeight/2
			lineWidth := math.Max(width/4-cfg.Padding, 1)
			n.bar = append(n.bar, &Mesh{
				ID:       n.ID,
				Tag:      TagBar,
				Shape:    geometry.Rect(lineWidth, line).Translate(0, line/2),
				Position: Vec3{X: x, Z: 0.2},
				Color:    colBar,
			})
		}
	}

	n.ring = nil
	if n.Section {
		n.ring = &Mesh{
			ID:       n.ID,
			Tag:      TagSection,
			Shape:    geometry.Disc(cfg.NoteHeight/2+sectionRing, 24),
			Position: Vec3{X: x, Z: 0.05},
			Color:    colSection,
		}
	}
}

func (n *Note) meshes() []*Mesh {
	out := make([]*Mesh, 0, len(n.bar)+2)
	if n.ring != nil {
		out = append(out, n.ring)
	}
	if n.body != nil {
		out = append(out, n.body)
	}
	return append(out, n.bar...)
}

// place moves every mesh to its position for scroll.
func (n *Note) place(cfg layout.Config, scroll float64) {
	if n.body == nil {
		return
	}
	y := cfg.NoteY(n.Offset, scroll)
	n.body.Position.Y = y
	if n.ring != nil {
		n.ring.Position.Y = y
	}
	barY := y
	if !n.Held() {
		barY -= (cfg.NoteHeight - n.VisualLength - cfg.Padding) / 2
	}
	for _, m := range n.bar {
		m.Position.Y = barY
	}
}
