package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the paddle hit flash. Tween is nil when no flash is active.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float64 // 1 = full flash color, 0 = normal color
}

var Flash = donburi.NewComponentType[FlashData]()
