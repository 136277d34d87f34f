package ui

import (
	"bytes"
	"testing"

	"github.com/ingyamilmolinar/lanechart/core/model"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
)

var testChart = []model.Note{
	{Offset: 0, Lane: 0},
	{Offset: 1, Lane: 1, Length: 1},
	{Offset: 2, Lane: 2, Swipe: model.SwipeUp},
}

func newTestViewer(t *testing.T, opts Options) (*Viewer, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts.Logger = game_log.New(&logs, game_log.LevelDebug)
	v, err := New(FixedContainer{800, 600}, testChart, []float64{2}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, &logs
}

// notePixel returns container pixels over the middle of n's body.
func notePixel(t *testing.T, v *Viewer, n *Note) (float64, float64) {
	t.Helper()
	b := n.Body()
	if b == nil {
		t.Fatalf("note %s has no body", n.ID)
	}
	minX, minY, maxX, maxY := b.Shape.Bounds()
	c := Vec3{b.Position.X + (minX+maxX)/2, b.Position.Y + (minY+maxY)/2, b.Position.Z}
	nx, ny, ok := v.Camera().Project(c)
	if !ok {
		t.Fatalf("note %s not visible", n.ID)
	}
	w, h := v.Size()
	return ToScreen(nx, ny, w, h)
}
