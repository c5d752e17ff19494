package components

import (
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HitboxData is the collision box, fixed at spawn.
type HitboxData struct {
	Area gamemath.Rect
}

var Hitbox = donburi.NewComponentType[HitboxData]()
