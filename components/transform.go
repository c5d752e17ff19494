package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's world position. The playfield is centered on
// the origin with +Y pointing up.
type TransformData struct {
	Translation math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
