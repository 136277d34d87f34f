package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/lanechart/core/layout"
	"github.com/ingyamilmolinar/lanechart/core/model"
)

func TestNewWithoutContainer(t *testing.T) {
	if _, err := New(nil, testChart, nil, Options{}); !errors.Is(err, ErrNoContainer) {
		t.Fatalf("err=%v want ErrNoContainer", err)
	}
}

func TestNewBuildsPositionedNotes(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	notes := v.Notes()
	if len(notes) != len(testChart) {
		t.Fatalf("notes=%d", len(notes))
	}
	ids := map[string]bool{}
	for _, n := range notes {
		if n.ID == "" || ids[n.ID] {
			t.Fatalf("bad id %q", n.ID)
		}
		ids[n.ID] = true
		if got, ok := v.NoteByID(n.ID); !ok || got != n {
			t.Fatalf("lookup by id failed for %s", n.ID)
		}
	}
	if !notes[2].Section || notes[0].Section {
		t.Fatalf("section flags wrong: %v %v", notes[0].Section, notes[2].Section)
	}
	if c := v.Scene().Count(TagSection); c != 1 {
		t.Fatalf("section rings=%d", c)
	}
	if c := v.Scene().Count(TagNote); c != 3 {
		t.Fatalf("note bodies=%d", c)
	}
	// tap bar, hold bar + line, arrow
	if c := v.Scene().Count(TagBar); c != 4 {
		t.Fatalf("bars=%d", c)
	}
	if notes[1].Ticks(v.Config()) != 192 {
		t.Fatalf("ticks=%g", notes[1].Ticks(v.Config()))
	}
}

func TestNewDebugFixtures(t *testing.T) {
	v, _ := newTestViewer(t, Options{Debug: true})
	notes := v.Notes()
	if len(notes) != len(testChart)+4 {
		t.Fatalf("notes=%d", len(notes))
	}
	for i := 1; i < len(notes); i++ {
		if notes[i].Offset < notes[i-1].Offset {
			t.Fatalf("notes not sorted at %d", i)
		}
	}
	last := notes[len(notes)-1]
	if last.Offset != 2.5 || last.Lane != 0 || last.Length != 3 {
		t.Fatalf("last fixture=%v", last.Note)
	}
}

func TestTapNotesKeepNominalLength(t *testing.T) {
	cfg := layout.DefaultConfig()
	v, _ := newTestViewer(t, Options{})
	for _, n := range v.Notes() {
		if !n.Held() && n.VisualLength != cfg.NoteHeight {
			t.Fatalf("%v visual=%g", n.Note, n.VisualLength)
		}
	}
}

func TestResizeIdempotent(t *testing.T) {
	v, logs := newTestViewer(t, Options{})
	v.Resize(1024, 512)
	plane, lane := v.PlaneSize(), v.LaneWidth()
	meshes, lines := len(v.Scene().Meshes()), len(v.Scene().Lines())

	v.Resize(1024, 512)
	if v.PlaneSize() != plane || v.LaneWidth() != lane {
		t.Fatalf("second resize changed geometry: %g/%g vs %g/%g", v.PlaneSize(), v.LaneWidth(), plane, lane)
	}
	if len(v.Scene().Meshes()) != meshes || len(v.Scene().Lines()) != lines {
		t.Fatalf("second resize duplicated scene objects")
	}
	if math.Abs(plane-200) > 1e-9 || math.Abs(lane-200.0/3) > 1e-9 {
		t.Fatalf("plane=%g lane=%g", plane, lane)
	}
	if lines != 2 {
		t.Fatalf("dividers=%d", lines)
	}

	v.Resize(0, 512)
	if v.PlaneSize() != plane {
		t.Fatalf("zero width resize applied")
	}
	if !strings.Contains(logs.String(), "Ignoring resize") {
		t.Fatalf("zero resize not logged")
	}
}

func TestScrollClamp(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	for i := 0; i < 5; i++ {
		v.Scroll(-1)
	}
	if v.Page() != 0 || v.ScrollOffset() != 0 {
		t.Fatalf("page=%g offset=%g after scrolling up", v.Page(), v.ScrollOffset())
	}
	prev := v.ScrollOffset()
	for i := 0; i < 50; i++ {
		v.Scroll(100)
		if v.ScrollOffset() >= prev {
			t.Fatalf("offset %g did not decrease from %g", v.ScrollOffset(), prev)
		}
		prev = v.ScrollOffset()
	}
	v.Scroll(0)
	if v.Page() != 50 {
		t.Fatalf("page=%g", v.Page())
	}
	v.Scroll(-3)
	if v.Page() != 49 {
		t.Fatalf("page=%g after one step up", v.Page())
	}
}

func TestPlayAdvancesPage(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	v.Tick(10)
	if v.Page() != 0 {
		t.Fatalf("idle tick moved page to %g", v.Page())
	}
	v.KeyPress(ebiten.KeyA)
	if v.Playing() {
		t.Fatalf("unrelated key started playback")
	}
	v.KeyPress(ebiten.KeySpace)
	if !v.Playing() {
		t.Fatalf("space did not start playback")
	}
	v.Tick(10)
	if math.Abs(v.Page()-1) > 1e-9 {
		t.Fatalf("page=%g want 1", v.Page())
	}
	n := v.Notes()[0]
	cfg := v.Config()
	want := cfg.NoteY(n.Offset, -cfg.ScrollFactor)
	if math.Abs(n.Body().Position.Y-want) > 1e-9 {
		t.Fatalf("body y=%g want %g", n.Body().Position.Y, want)
	}
	v.KeyPress(ebiten.KeySpace)
	v.Tick(10)
	if v.Playing() || math.Abs(v.Page()-1) > 1e-9 {
		t.Fatalf("paused viewer kept moving: %g", v.Page())
	}
	if v.Frame() != 3 {
		t.Fatalf("frames=%d", v.Frame())
	}
}

func TestSmoothScrollEases(t *testing.T) {
	v, _ := newTestViewer(t, Options{Smooth: true})
	n := v.Notes()[0]
	start := n.Body().Position.Y
	v.Scroll(1)
	v.Tick(1)
	mid := n.Body().Position.Y
	target := start - v.Config().ScrollFactor
	if !(mid < start && mid > target) {
		t.Fatalf("after one frame y=%g, want between %g and %g", mid, target, start)
	}
	v.Tick(600)
	if math.Abs(n.Body().Position.Y-target) > 0.01 {
		t.Fatalf("y=%g did not settle at %g", n.Body().Position.Y, target)
	}
}

func TestClickSelectsNote(t *testing.T) {
	v, logs := newTestViewer(t, Options{})
	target := v.Notes()[1]
	x, y := notePixel(t, v, target)

	var got []*Note
	cancel := v.Selection().Subscribe(func(n *Note) { got = append(got, n) })
	defer cancel()

	n, ok := v.Click(x, y)
	if !ok || n != target {
		t.Fatalf("click hit %v, want %s", n, target.ID)
	}
	if v.Selected() != target || len(got) != 1 || got[0] != target {
		t.Fatalf("selection not published")
	}
	if !strings.Contains(logs.String(), "Selected") {
		t.Fatalf("selection not logged")
	}

	// empty space keeps the previous selection
	if n, ok := v.Click(1, 1); ok || n != nil {
		t.Fatalf("click on empty space hit %v", n)
	}
	if v.Selected() != target || len(got) != 1 {
		t.Fatalf("miss changed the selection")
	}
}

func TestPointerMoveHighlights(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	target := v.Notes()[0]
	x, y := notePixel(t, v, target)

	if !v.PointerMove(x, y) {
		t.Fatalf("no hover over note")
	}
	if v.Hovered() != target || target.Body().Color != colHover {
		t.Fatalf("note not highlighted")
	}
	for _, n := range v.Notes()[1:] {
		if n.Body().Color != colNote {
			t.Fatalf("other note highlighted")
		}
	}

	if v.PointerMove(1, 1) {
		t.Fatalf("hover over empty space")
	}
	if v.Hovered() != nil || target.Body().Color != colNote {
		t.Fatalf("highlight not cleared")
	}

	v.Click(x, y)
	v.PointerMove(1, 1)
	if target.Body().Color != colSelected {
		t.Fatalf("selected note colour=%v", target.Body().Color)
	}
}

func TestScrolledNotesStayClickable(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	v.Scroll(1)
	v.Tick(1)
	target := v.Notes()[2]
	x, y := notePixel(t, v, target)
	if n, ok := v.Click(x, y); !ok || n != target {
		t.Fatalf("click after scroll hit %v", n)
	}
}

func TestOverlappingNotesNegotiated(t *testing.T) {
	notes := []model.Note{{Offset: 0, Lane: 0}, {Offset: 0.5, Lane: 0}}
	v, err := New(FixedContainer{800, 600}, notes, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range v.Notes() {
		if math.Abs(n.VisualLength-15) > 1e-9 {
			t.Fatalf("visual=%g want 15", n.VisualLength)
		}
	}
}

func TestResizeKeepsSelectionColour(t *testing.T) {
	v, _ := newTestViewer(t, Options{})
	target := v.Notes()[1]
	x, y := notePixel(t, v, target)
	if _, ok := v.Click(x, y); !ok {
		t.Fatalf("click missed")
	}
	v.PointerMove(1, 1)

	v.Resize(1024, 768)
	if target.Body().Color != colSelected {
		t.Fatalf("selected note colour after resize=%v", target.Body().Color)
	}
	for _, n := range v.Notes() {
		if n != target && n.Body().Color != colNote {
			t.Fatalf("note %s colour after resize=%v", n.ID, n.Body().Color)
		}
	}
}

func TestCoincidentNotesStayPickable(t *testing.T) {
	notes := []model.Note{{Offset: 1, Lane: 1}, {Offset: 1, Lane: 1}}
	v, err := New(FixedContainer{800, 600}, notes, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	cfg := v.Config()
	for _, n := range v.Notes() {
		if n.VisualLength != 0 {
			t.Fatalf("visual=%g want 0", n.VisualLength)
		}
		_, minY, _, maxY := n.Body().Shape.Bounds()
		if h := maxY - minY; math.Abs(h-2*cfg.CornerRadius) > 1e-9 {
			t.Fatalf("body height=%g want %g", h, 2*cfg.CornerRadius)
		}
	}
	x, y := notePixel(t, v, v.Notes()[0])
	if n, ok := v.Click(x, y); !ok || n != v.Notes()[0] {
		t.Fatalf("click on collapsed note hit %v", n)
	}
}
