package gamemath

import "github.com/yohamta/donburi/features/math"

// Normalize returns the unit vector pointing along v.
// The zero vector has no direction and normalizes to itself.
func Normalize(v math.Vec2) math.Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return math.Vec2{}
	}
	return math.NewVec2(v.X/mag, v.Y/mag)
}

// WithMagnitude returns v rescaled to the given length.
func WithMagnitude(v math.Vec2, speed float64) math.Vec2 {
	return Normalize(v).MulScalar(speed)
}
