package ui

import (
	"math"
	"testing"
)

func TestCameraLooksAtOrigin(t *testing.T) {
	c := NewCamera(16.0 / 9.0)
	x, y, ok := c.Project(Vec3{})
	if !ok {
		t.Fatalf("origin not projectable")
	}
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("origin projected to (%g,%g), want centre", x, y)
	}
}

func TestCameraRayRoundTrip(t *testing.T) {
	c := NewCamera(4.0 / 3.0)
	points := []Vec3{{10, 5, 0}, {-40, -30, 0.1}, {25, 60, 0.2}}
	for _, p := range points {
		nx, ny, ok := c.Project(p)
		if !ok {
			t.Fatalf("%v not projectable", p)
		}
		r := c.Ray(nx, ny)
		tt := (p.Z - r.Origin.Z) / r.Dir.Z
		hit := r.At(tt)
		if hit.Sub(p).Len() > 1e-6 {
			t.Fatalf("ray through %v hits %v", p, hit)
		}
	}
}

func TestCameraRejectsPointsBehind(t *testing.T) {
	c := NewCamera(1)
	if _, _, ok := c.Project(Vec3{0, -20, 200}); ok {
		t.Fatalf("point behind camera projected")
	}
}

func TestClipNearKeepsVisiblePolygon(t *testing.T) {
	c := NewCamera(1)
	tri := []Vec3{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}}
	if got := c.ClipNear(tri); len(got) != 3 {
		t.Fatalf("clipped visible triangle to %d points", len(got))
	}
	// stretches far behind the camera
	long := []Vec3{{-5, -2000, 0}, {5, -2000, 0}, {5, 0, 0}, {-5, 0, 0}}
	got := c.ClipNear(long)
	if len(got) < 3 {
		t.Fatalf("clipped polygon has %d points", len(got))
	}
	for _, p := range got {
		if c.Depth(p) < c.Near {
			t.Fatalf("point %v left behind near plane", p)
		}
	}
}

func TestNDCConversion(t *testing.T) {
	x, y := ToNDC(400, 300, 800, 600)
	if x != 0 || y != 0 {
		t.Fatalf("centre -> (%g,%g)", x, y)
	}
	x, y = ToNDC(0, 0, 800, 600)
	if x != -1 || y != 1 {
		t.Fatalf("top-left -> (%g,%g)", x, y)
	}
	sx, sy := ToScreen(-1, 1, 800, 600)
	if sx != 0 || sy != 0 {
		t.Fatalf("back to (%g,%g)", sx, sy)
	}
}
