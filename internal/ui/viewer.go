package ui

import (
	"errors"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/lanechart/core/geometry"
	"github.com/ingyamilmolinar/lanechart/core/layout"
	"github.com/ingyamilmolinar/lanechart/core/model"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
	"github.com/ingyamilmolinar/lanechart/internal/utils"
)

// ErrNoContainer is returned by New when there is nothing to render into.
var ErrNoContainer = errors.New("viewer: no container to render into")

// Container is the surface the viewer is sized from.
type Container interface {
	Size() (width, height int)
}

// FixedContainer is a Container of constant size.
type FixedContainer struct{ Width, Height int }

func (c FixedContainer) Size() (int, int) { return c.Width, c.Height }

// Options configures a Viewer. The zero value is usable.
type Options struct {
	Debug  bool // append the built-in fixture notes
	Smooth bool // ease the displayed page toward the target page
	Layout *layout.Config
	Logger *game_log.Logger
}

// debugNotes are mixed into the chart when Options.Debug is set.
var debugNotes = []model.Note{
	{Offset: 0.5, Lane: 2},
	{Offset: 1, Lane: 1},
	{Offset: 1.5, Lane: 2},
	{Offset: 2.5, Lane: 0, Length: 3},
}

// Viewer renders a chart on a perspective plane and reacts to pointer, wheel
// and keyboard input. It is not safe for concurrent use; hosts call it from
// one loop.
type Viewer struct {
	logger *game_log.Logger
	opts   Options
	cfg    layout.Config

	container     Container
	width, height int

	camera *Camera
	scene  *Scene

	notes     []*Note
	byID      map[string]*Note
	selection *Selection
	hovered   *Note

	playing bool
	page    float64 // target scroll progress, >= 0
	shown   float64 // displayed scroll progress
	shownV  float64
	spring  harmonica.Spring
	frame   uint64
}

// New builds the positioned notes, runs layout negotiation once and sizes
// the scene from container.
func New(container Container, notes []model.Note, sections []float64, opts Options) (*Viewer, error) {
	if container == nil {
		return nil, ErrNoContainer
	}
	logger := opts.Logger
	if logger == nil {
		logger = game_log.Discard()
	}
	cfg := layout.DefaultConfig()
	if opts.Layout != nil {
		cfg = *opts.Layout
	}

	all := make([]model.Note, 0, len(notes)+len(debugNotes))
	all = append(all, notes...)
	if opts.Debug {
		all = append(all, debugNotes...)
	}
	model.SortNotes(all)

	v := &Viewer{
		logger:    logger.With("VIEWER"),
		opts:      opts,
		cfg:       cfg,
		container: container,
		camera:    NewCamera(1),
		scene:     NewScene(),
		byID:      make(map[string]*Note, len(all)),
		selection: NewSelection(),
		spring:    harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
	}

	lengths := layout.VisualLengths(all, cfg)
	heads := model.NewSectionSet(sections)
	v.notes = make([]*Note, len(all))
	for i, n := range all {
		pn := newNote(n, lengths[i], heads.Has(n.Offset))
		v.notes[i] = pn
		v.byID[pn.ID] = pn
	}
	v.logger.Infof("Loaded %d notes (%d sections)", len(v.notes), len(heads))

	w, h := container.Size()
	v.Resize(w, h)
	return v, nil
}

/* ───────────────────────── frame loop ───────────────────────── */

// Tick advances the viewer by frames display frames.
func (v *Viewer) Tick(frames float64) {
	if frames <= 0 {
		return
	}
	if v.playing {
		v.page += v.cfg.AutoAdvance * frames
	}
	if v.opts.Smooth {
		for i := 0; i < int(frames+0.5); i++ {
			v.shown, v.shownV = v.spring.Update(v.shown, v.shownV, v.page)
		}
	} else {
		v.shown = v.page
	}
	v.place()
	v.frame++
}

func (v *Viewer) place() {
	scroll := -v.shown * v.cfg.ScrollFactor
	for _, n := range v.notes {
		n.place(v.cfg, scroll)
	}
}

// Resize rebuilds everything that depends on the container size.
func (v *Viewer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		v.logger.Warnf("Ignoring resize to %dx%d", width, height)
		return
	}
	v.width, v.height = width, height
	v.cfg = v.cfg.WithViewport(width, height)
	v.camera.Aspect = float64(width) / float64(height)

	v.scene.Clear()
	v.buildBackground()
	for _, n := range v.notes {
		n.build(v.cfg)
		v.baseColor(n)
		v.scene.Add(n.meshes()...)
	}
	v.hovered = nil
	v.place()
	v.logger.Debugf("Resized to %dx%d plane=%.2f lane=%.2f", width, height, v.cfg.PlaneSize, v.cfg.LaneWidth)
}

func (v *Viewer) buildBackground() {
	h := float64(v.height)
	v.scene.Add(&Mesh{
		Tag:   TagBackground,
		Shape: geometry.Rect(v.cfg.PlaneSize, h),
		Color: colBackground,
	})
	for _, x := range v.cfg.DividerXs() {
		v.scene.AddLine(Line{
			A:     Vec3{x, -h / 2, 0.1},
			B:     Vec3{x, h / 2, 0.1},
			Color: colDivider,
		})
	}
}

/* ───────────────────────── input ───────────────────────── */

func (v *Viewer) pick(x, y float64) *Note {
	ndcX, ndcY := ToNDC(x, y, v.width, v.height)
	m := v.scene.Intersect(v.camera.Ray(ndcX, ndcY), TagNote)
	if m == nil {
		return nil
	}
	return v.byID[m.ID]
}

func (v *Viewer) baseColor(n *Note) {
	if n.body == nil {
		return
	}
	if n == v.selection.Get() {
		n.body.Color = colSelected
	} else {
		n.body.Color = colNote
	}
}

// PointerMove highlights the note under (x, y) in container pixels and
// reports whether there is one.
func (v *Viewer) PointerMove(x, y float64) bool {
	for _, n := range v.notes {
		v.baseColor(n)
	}
	v.hovered = v.pick(x, y)
	if v.hovered == nil {
		return false
	}
	v.hovered.body.Color = colHover
	return true
}

// Click selects the note under (x, y). A miss keeps the current selection.
func (v *Viewer) Click(x, y float64) (*Note, bool) {
	n := v.pick(x, y)
	if n == nil {
		return nil, false
	}
	prev := v.selection.Get()
	v.selection.Set(n)
	if prev != nil && prev != n {
		v.baseColor(prev)
	}
	if n != v.hovered {
		v.baseColor(n)
	}
	v.logger.Infof("Selected %s", n.Note)
	return n, true
}

// Scroll moves one page per wheel event. Positive deltaY scrolls forward;
// backward scrolling stops at the top of the chart.
func (v *Viewer) Scroll(deltaY float64) {
	switch {
	case deltaY > 0:
		v.page++
	case deltaY < 0:
		v.page = utils.Clamp(v.page-1, 0, v.page)
	}
}

// KeyPress handles keyboard shortcuts.
func (v *Viewer) KeyPress(k ebiten.Key) {
	if k == ebiten.KeySpace {
		v.TogglePlay()
	}
}

func (v *Viewer) TogglePlay() {
	v.playing = !v.playing
	if v.playing {
		v.logger.Infof("Playing from page %.2f", v.page)
	} else {
		v.logger.Infof("Paused at page %.2f", v.page)
	}
}

/* ───────────────────────── state ───────────────────────── */

func (v *Viewer) Playing() bool { return v.playing }
func (v *Viewer) Page() float64 { return v.page }

// ScrollOffset is the rendered vertical offset for the target page.
func (v *Viewer) ScrollOffset() float64 { return -v.page * v.cfg.ScrollFactor }

func (v *Viewer) Selected() *Note { return v.selection.Get() }
func (v *Viewer) Selection() *Selection { return v.selection }
func (v *Viewer) Hovered() *Note { return v.hovered }
func (v *Viewer) Notes() []*Note { return v.notes }
func (v *Viewer) PlaneSize() float64 { return v.cfg.PlaneSize }
func (v *Viewer) LaneWidth() float64 { return v.cfg.LaneWidth }
func (v *Viewer) Config() layout.Config { return v.cfg }
func (v *Viewer) Camera() *Camera { return v.camera }
func (v *Viewer) Scene() *Scene { return v.scene }
func (v *Viewer) Frame() uint64 { return v.frame }
func (v *Viewer) Size() (width, height int) { return v.width, v.height }

// NoteByID looks up a positioned note.
func (v *Viewer) NoteByID(id string) (*Note, bool) {
	n, ok := v.byID[id]
	return n, ok
}
