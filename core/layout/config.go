package layout

import "github.com/ingyamilmolinar/lanechart/core/model"

// Config holds every constant the layout and render passes share. It is
// passed by value; WithViewport derives the size-dependent fields.
type Config struct {
	NoteHeight   float64 // nominal visual height of a note, world units
	Lanes        int
	Padding      float64 // gap between a note body and its lane edges
	CornerRadius float64
	TicksPerUnit float64 // editor subdivision of one chart unit
	ScrollFactor float64 // world units per page step
	AutoAdvance  float64 // page advance per frame while playing
	PlaneHeight  float64 // fixed world height the background is sized from

	// derived by WithViewport
	PlaneSize float64
	LaneWidth float64
}

func DefaultConfig() Config {
	return Config{
		NoteHeight:   30,
		Lanes:        model.Lanes,
		Padding:      10,
		CornerRadius: 3,
		TicksPerUnit: 192,
		ScrollFactor: 30,
		AutoAdvance:  0.1,
		PlaneHeight:  100,
	}
}

// WithViewport returns a copy sized for a width×height container.
func (c Config) WithViewport(width, height int) Config {
	if width <= 0 || height <= 0 {
		return c
	}
	aspect := float64(width) / float64(height)
	c.PlaneSize = c.PlaneHeight * aspect
	lanes := c.Lanes
	if lanes <= 0 {
		lanes = model.Lanes
	}
	c.LaneWidth = c.PlaneSize / float64(lanes)
	return c
}

// NoteY is the projected vertical position of a note at offset for the given
// scroll (world units, already multiplied by ScrollFactor).
func (c Config) NoteY(offset, scroll float64) float64 {
	return c.NoteHeight*offset - c.NoteHeight + scroll
}

// LaneX is the horizontal centre of lane.
func (c Config) LaneX(lane int) float64 {
	return -c.PlaneSize/2 + c.LaneWidth*(float64(lane)+0.5)
}

// NoteWidth is the body width of a note inside its lane.
func (c Config) NoteWidth() float64 {
	return c.LaneWidth - c.Padding
}

// DividerXs returns the x of each lane divider.
func (c Config) DividerXs() []float64 {
	if c.Lanes < 2 {
		return nil
	}
	xs := make([]float64, 0, c.Lanes-1)
	for i := 1; i < c.Lanes; i++ {
		xs = append(xs, float64(i)*c.LaneWidth-c.PlaneSize/2)
	}
	return xs
}
