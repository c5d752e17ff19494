package factory

import (
	"github.com/automoto/pongpacman/components"
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// attachObject creates the screen-space resolv mirror of a hitbox and adds it
// to the space if one exists.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, pos math.Vec2, area gamemath.Rect, tag string) *resolv.Object {
	var x, y float64
	if pfEntry, ok := components.Playfield.First(ecs.World); ok {
		x, y, _, _ = components.Playfield.Get(pfEntry).HitboxToScreen(pos, area)
	}

	obj := resolv.NewObject(x, y, area.Width(), area.Height(), tag)
	obj.SetShape(resolv.NewRectangle(0, 0, area.Width(), area.Height()))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obj
}
