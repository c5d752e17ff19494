package components

import (
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayfieldData is the world size, captured once from the initial window size.
type PlayfieldData struct {
	W, H float64
}

// HalfW returns the x clamp bound.
func (p PlayfieldData) HalfW() float64 { return p.W / 2 }

// HalfH returns the y clamp bound.
func (p PlayfieldData) HalfH() float64 { return p.H / 2 }

// ToScreen converts a world point to screen pixels (origin top-left, +Y down).
func (p PlayfieldData) ToScreen(x, y float64) (float64, float64) {
	return x + p.W/2, p.H/2 - y
}

// HitboxToScreen returns the screen-space top-left corner and size of a
// hitbox placed at pos.
func (p PlayfieldData) HitboxToScreen(pos math.Vec2, r gamemath.Rect) (x, y, w, h float64) {
	x, y = p.ToScreen(pos.X+r.Left, pos.Y+r.Top)
	return x, y, r.Width(), r.Height()
}

var Playfield = donburi.NewComponentType[PlayfieldData]()
