package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AxisVelocity maps a pair of opposing buttons to a signed speed:
// +speed for positive only, -speed for negative only, 0 for both or neither.
func AxisVelocity(positive, negative bool, speed float64) float64 {
	return speed * float64(boolToInt(positive)-boolToInt(negative))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
