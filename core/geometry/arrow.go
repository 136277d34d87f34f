package geometry

import "fmt"

// Hand-authored arrow outlines in glyph space, indexed by swipe-1.
var arrows = [4][]Vec2{
	// up
	{{30, 7}, {17.5, -2}, {5, 7}, {7, 10}, {15, 4}, {15, 31}, {20, 31}, {20, 4}, {28, 10}},
	// down
	{{-30, -7}, {-17.5, 2}, {-5, -7}, {-7, -10}, {-15, -4}, {-15, -31}, {-20, -31}, {-20, -4}, {-28, -10}},
	// left
	{{-7, 30}, {2, 17.5}, {-7, 5}, {-10, 7}, {-4, 15}, {-31, 15}, {-31, 20}, {-4, 20}, {-10, 28}},
	// right
	{{7, 30}, {-2, 17.5}, {7, 5}, {10, 7}, {4, 15}, {31, 15}, {31, 20}, {4, 20}, {10, 28}},
}

// Arrow returns the glyph for a 1-based swipe direction
// (1 up, 2 down, 3 left, 4 right).
func Arrow(swipe int) (Shape, error) {
	if swipe < 1 || swipe > len(arrows) {
		return Shape{}, fmt.Errorf("arrow: swipe direction %d out of range 1..%d", swipe, len(arrows))
	}
	src := arrows[swipe-1]
	pts := make([]Vec2, len(src))
	copy(pts, src)
	return Shape{Points: pts}, nil
}
