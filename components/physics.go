package components

import "github.com/yohamta/donburi"

// VelocityData is a per-frame displacement.
type VelocityData struct {
	X, Y  float64
	Bound bool // Paddles are bound, the ball is free. Not read by any system yet.
}

// Set replaces both axes at once.
func (v *VelocityData) Set(x, y float64) {
	v.X = x
	v.Y = y
}

var Velocity = donburi.NewComponentType[VelocityData]()
