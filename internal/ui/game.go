package ui

import (
	"image"
	"time"

	"github.com/bep/debounce"
	"github.com/hajimehoshi/ebiten/v2"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
)

// resizeDelay is how long the window must stay the same size before the
// scene is rebuilt.
const resizeDelay = 150 * time.Millisecond

// Game adapts a Viewer to ebiten.Game.
type Game struct {
	viewer *Viewer
	hud    *HUD
	logger *game_log.Logger

	winW, winH int
	sized      bool
	resizeCh   chan image.Point
	debounced  func(func())

	lastX, lastY int
	hovering     bool
}

func NewGame(v *Viewer, logger *game_log.Logger) *Game {
	if logger == nil {
		logger = game_log.Discard()
	}
	g := &Game{
		viewer:    v,
		hud:       NewHUD(v.Selection()),
		logger:    logger.With("GAME"),
		resizeCh:  make(chan image.Point, 1),
		debounced: debounce.New(resizeDelay),
		lastX:     -1,
		lastY:     -1,
	}
	g.winW, g.winH = v.Size()
	g.initJS()
	return g
}

func (g *Game) Viewer() *Viewer { return g.viewer }
func (g *Game) HUD() *HUD       { return g.hud }

/* ───────────────────────── ebiten.Game ───────────────────────── */

// Layout applies the first size at once and debounces later changes.
func (g *Game) Layout(w, h int) (int, int) {
	if w == g.winW && h == g.winH && g.sized {
		return w, h
	}
	g.winW, g.winH = w, h
	if !g.sized {
		g.sized = true
		if vw, vh := g.viewer.Size(); vw != w || vh != h {
			g.viewer.Resize(w, h)
		}
		return w, h
	}
	p := image.Pt(w, h)
	g.debounced(func() { g.queueResize(p) })
	return w, h
}

// queueResize runs on the debounce timer goroutine; it keeps only the
// newest size.
func (g *Game) queueResize(p image.Point) {
	select {
	case <-g.resizeCh:
	default:
	}
	select {
	case g.resizeCh <- p:
	default:
	}
}

func (g *Game) applyResize() {
	select {
	case p := <-g.resizeCh:
		g.logger.Debugf("Window resized to %dx%d", p.X, p.Y)
		g.viewer.Resize(p.X, p.Y)
	default:
	}
}

func (g *Game) Update() error {
	g.applyResize()
	g.handleInput()
	g.viewer.Tick(1)
	g.reportStateJS()
	return nil
}

func (g *Game) handleInput() {
	x, y := cursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		hovering := g.viewer.PointerMove(float64(x), float64(y))
		if hovering != g.hovering {
			g.hovering = hovering
			if hovering {
				setCursorShape(ebiten.CursorShapePointer)
			} else {
				setCursorShape(ebiten.CursorShapeDefault)
			}
		}
	}
	if isMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.viewer.Click(float64(x), float64(y))
	}
	// ebiten reports wheel-down as negative
	if _, wy := wheel(); wy != 0 {
		g.viewer.Scroll(-wy)
	}
	if isKeyJustPressed(ebiten.KeySpace) {
		g.viewer.KeyPress(ebiten.KeySpace)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colClear)
	g.viewer.Draw(screen)
	g.hud.Draw(screen, g.viewer)
}
