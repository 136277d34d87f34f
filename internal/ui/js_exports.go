//go:build js

package ui

import "syscall/js"

// initJS exposes playback control and publishes the selection to the page.
func (g *Game) initJS() {
	js.Global().Set("togglePlay", js.FuncOf(func(js.Value, []js.Value) any {
		g.viewer.TogglePlay()
		return nil
	}))
	g.viewer.Selection().Subscribe(func(n *Note) {
		if n == nil {
			js.Global().Set("__selectedNote", js.Null())
			return
		}
		js.Global().Set("__selectedNote", js.ValueOf(map[string]any{
			"id":           n.ID,
			"offset":       n.Offset,
			"lane":         n.Lane,
			"length":       n.Length,
			"swipe":        int(n.Swipe),
			"visualLength": n.VisualLength,
		}))
	})
}

// reportStateJS publishes playback state for browser tests.
func (g *Game) reportStateJS() {
	js.Global().Set("__playing", js.ValueOf(g.viewer.Playing()))
	js.Global().Set("__page", js.ValueOf(g.viewer.Page()))
}
