package ui

import (
	"math"
)

// Vec3 is a world-space point or direction.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float64 { return math.Sqrt(a.Dot(a)) }
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin, Dir Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Fov    float64 // vertical field of view, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position Vec3
	Target   Vec3
	Up       Vec3
}

// NewCamera returns the chart camera: slightly below the chart, tilted up at
// the origin so the lanes recede into the distance.
func NewCamera(aspect float64) *Camera {
	return &Camera{
		Fov:      75,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
		Position: Vec3{0, -20, 100},
		Target:   Vec3{0, 0, 0},
		Up:       Vec3{0, 1, 0},
	}
}

// basis returns right, up and forward unit vectors.
func (c *Camera) basis() (right, up, fwd Vec3) {
	fwd = c.Target.Sub(c.Position).Normalize()
	right = fwd.Cross(c.Up).Normalize()
	up = right.Cross(fwd)
	return
}

func (c *Camera) tanHalfFov() float64 {
	return math.Tan(c.Fov * math.Pi / 360)
}

// Project maps a world point to normalised device coordinates. ok is false
// when the point lies outside the near/far range.
func (c *Camera) Project(p Vec3) (ndcX, ndcY float64, ok bool) {
	right, up, fwd := c.basis()
	d := p.Sub(c.Position)
	depth := d.Dot(fwd)
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}
	t := c.tanHalfFov()
	ndcX = d.Dot(right) / (depth * t * c.Aspect)
	ndcY = d.Dot(up) / (depth * t)
	return ndcX, ndcY, true
}

// Ray returns the ray from the camera through a point in NDC space.
func (c *Camera) Ray(ndcX, ndcY float64) Ray {
	right, up, fwd := c.basis()
	t := c.tanHalfFov()
	dir := fwd.
		Add(right.Scale(ndcX * t * c.Aspect)).
		Add(up.Scale(ndcY * t))
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// ToNDC converts container pixels to normalised device coordinates.
func ToNDC(x, y float64, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x/float64(width)*2 - 1, -(y/float64(height))*2 + 1
}

// ToScreen converts NDC back to container pixels.
func ToScreen(ndcX, ndcY float64, width, height int) (float64, float64) {
	return (ndcX + 1) / 2 * float64(width), (1 - ndcY) / 2 * float64(height)
}

// Depth is the distance of p in front of the camera along its view axis.
func (c *Camera) Depth(p Vec3) float64 {
	_, _, fwd := c.basis()
	return p.Sub(c.Position).Dot(fwd)
}

// ClipNear cuts a closed polygon against the near plane so every returned
// point can be projected.
func (c *Camera) ClipNear(pts []Vec3) []Vec3 {
	if len(pts) == 0 {
		return nil
	}
	near := c.Near * 1.001
	out := make([]Vec3, 0, len(pts)+2)
	prev := pts[len(pts)-1]
	prevD := c.Depth(prev)
	for _, p := range pts {
		d := c.Depth(p)
		if (d >= near) != (prevD >= near) {
			t := (near - prevD) / (d - prevD)
			out = append(out, prev.Add(p.Sub(prev).Scale(t)))
		}
		if d >= near {
			out = append(out, p)
		}
		prev, prevD = p, d
	}
	return out
}
