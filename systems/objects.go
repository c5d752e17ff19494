package systems

import (
	"github.com/automoto/pongpacman/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each resolv object onto its entity's hitbox in screen
// space. Runs after the simulation systems so rendering sees this frame's state.
func UpdateObjects(ecs *ecs.ECS) {
	pf := getPlayfield(ecs.World)

	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) || !e.HasComponent(components.Hitbox) {
			continue
		}
		obj := components.Object.Get(e)
		pos := components.Transform.Get(e).Translation
		area := components.Hitbox.Get(e).Area

		obj.X, obj.Y, _, _ = pf.HitboxToScreen(pos, area)
		obj.Update()
	}
}
