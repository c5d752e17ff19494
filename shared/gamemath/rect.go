package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned box given as offsets from its owner's center.
// Top is the larger y value (world space is y-up).
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// NewCenteredRect returns a w x h box centered on its owner.
func NewCenteredRect(w, h float64) Rect {
	return Rect{
		Left:   -w / 2,
		Right:  w / 2,
		Top:    h / 2,
		Bottom: -h / 2,
	}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Intersects reports whether rectA placed at posA overlaps rectB placed at posB.
// Bounds are inclusive, so boxes that only share an edge intersect.
func Intersects(posA math.Vec2, rectA Rect, posB math.Vec2, rectB Rect) bool {
	xOverlap := rectA.Left+posA.X <= rectB.Right+posB.X &&
		rectA.Right+posA.X >= rectB.Left+posB.X
	yOverlap := rectA.Bottom+posA.Y <= rectB.Top+posB.Y &&
		rectA.Top+posA.Y >= rectB.Bottom+posB.Y

	return xOverlap && yOverlap
}
