package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// white returns a 1×1 source region for DrawTriangles, created on first use.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// drawPolygon fills a closed screen-space outline. It is a variable so tests
// can capture draw calls.
var drawPolygon = func(dst *ebiten.Image, pts [][2]float32, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var p vector.Path
	p.MoveTo(pts[0][0], pts[0][1])
	for _, q := range pts[1:] {
		p.LineTo(q[0], q[1])
	}
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.NonZero, AntiAlias: true}
	dst.DrawTriangles(vs, is, white(), op)
}

// drawLine strokes a one pixel segment. Overridable in tests.
var drawLine = func(dst *ebiten.Image, x0, y0, x1, y1 float32, c color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, 1, c, true)
}

// drawRect fills or outlines an axis-aligned screen rectangle.
var drawRect = func(dst *ebiten.Image, x, y, w, h float32, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, x, y, w, h, c, false)
		return
	}
	vector.StrokeRect(dst, x, y, w, h, 1, c, false)
}

var drawText = func(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

/* ─── projection helpers ─── */

// screenPoint projects p into container pixels.
func (v *Viewer) screenPoint(p Vec3) (float32, float32, bool) {
	nx, ny, ok := v.camera.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y := ToScreen(nx, ny, v.width, v.height)
	return float32(x), float32(y), true
}

// Draw renders the scene back to front.
func (v *Viewer) Draw(dst *ebiten.Image) {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	ordered := v.scene.DrawOrder()
	var pts [][2]float32
	lineDrawn := false
	for _, m := range ordered {
		// dividers sit between the background and the notes
		if !lineDrawn && m.Position.Z >= 0.1 {
			v.drawLines(dst)
			lineDrawn = true
		}
		pts = pts[:0]
		for _, p := range v.camera.ClipNear(m.WorldPoints()) {
			if x, y, ok := v.screenPoint(p); ok {
				pts = append(pts, [2]float32{x, y})
			}
		}
		drawPolygon(dst, pts, m.Color)
	}
	if !lineDrawn {
		v.drawLines(dst)
	}
}

func (v *Viewer) drawLines(dst *ebiten.Image) {
	for _, l := range v.scene.Lines() {
		a, b, ok := v.clipSegment(l.A, l.B)
		if !ok {
			continue
		}
		x0, y0, ok0 := v.screenPoint(a)
		x1, y1, ok1 := v.screenPoint(b)
		if ok0 && ok1 {
			drawLine(dst, x0, y0, x1, y1, l.Color)
		}
	}
}

// clipSegment trims a segment to the part in front of the near plane.
func (v *Viewer) clipSegment(a, b Vec3) (Vec3, Vec3, bool) {
	near := v.camera.Near * 1.001
	da, db := v.camera.Depth(a), v.camera.Depth(b)
	switch {
	case da < near && db < near:
		return a, b, false
	case da < near:
		a = a.Add(b.Sub(a).Scale((near - da) / (db - da)))
	case db < near:
		b = b.Add(a.Sub(b).Scale((near - db) / (da - db)))
	}
	return a, b, true
}
