package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	hudHeight  = 24
	panelWidth = 200
	lineHeight = 16
)

// HUD is the status bar and the selected-note panel drawn over the chart.
type HUD struct {
	details []string
	cancel  func()
}

// NewHUD binds the detail panel to sel.
func NewHUD(sel *Selection) *HUD {
	h := &HUD{}
	h.cancel = sel.Subscribe(h.show)
	return h
}

func (h *HUD) show(n *Note) {
	if n == nil {
		h.details = nil
		return
	}
	h.details = []string{
		"Selected note",
		fmt.Sprintf("offset  %g", n.Offset),
		fmt.Sprintf("lane    %d", n.Lane+1),
		fmt.Sprintf("length  %g", n.Length),
		fmt.Sprintf("swipe   %s", n.Swipe),
		fmt.Sprintf("visual  %.2f", n.VisualLength),
	}
	if n.Size != 0 {
		h.details = append(h.details, fmt.Sprintf("size    %d", n.Size))
	}
	if n.Section {
		h.details = append(h.details, "section start")
	}
}

// Details returns the lines of the selected-note panel.
func (h *HUD) Details() []string { return h.details }

// Close detaches the panel from its selection.
func (h *HUD) Close() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Status is the text shown in the status bar.
func (h *HUD) Status(v *Viewer) string {
	state := "paused"
	if v.Playing() {
		state = "playing"
	}
	return fmt.Sprintf("%s  page %.1f  notes %d  [space] play/pause", state, v.Page(), len(v.Notes()))
}

func (h *HUD) Draw(dst *ebiten.Image, v *Viewer) {
	w, _ := v.Size()
	drawRect(dst, 0, 0, float32(w), hudHeight, colHUD, true)

	stateCol := colPaused
	if v.Playing() {
		stateCol = colPlaying
	}
	dot := image.Rect(6, 6, 18, 18)
	drawRect(dst, float32(dot.Min.X), float32(dot.Min.Y), float32(dot.Dx()), float32(dot.Dy()), stateCol, true)
	drawText(dst, h.Status(v), 26, 4)

	if len(h.details) == 0 {
		return
	}
	x := float32(w - panelWidth - 8)
	y := float32(hudHeight + 8)
	ph := float32(len(h.details)*lineHeight + 8)
	drawRect(dst, x, y, panelWidth, ph, colHUD, true)
	drawRect(dst, x, y, panelWidth, ph, colHUDBorder, false)
	for i, line := range h.details {
		drawText(dst, line, int(x)+6, int(y)+4+i*lineHeight)
	}
}
