package systems

import (
	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports whether a key is currently held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the real keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeySet is a scripted KeySource. Keys present with a true value are held.
type KeySet map[ebiten.Key]bool

func (k KeySet) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

// Press holds every key bound to the given actions.
func (k KeySet) Press(actions ...cfg.ActionID) {
	for _, a := range actions {
		for _, key := range cfg.Input.Bindings[a].Keys {
			k[key] = true
		}
	}
}

// Release lets go of every key bound to the given actions.
func (k KeySet) Release(actions ...cfg.ActionID) {
	for _, a := range actions {
		for _, key := range cfg.Input.Bindings[a].Keys {
			delete(k, key)
		}
	}
}

// NewInputSystem returns a system that polls keys into the Input component.
// Must run BEFORE UpdatePlayers in the system order.
func NewInputSystem(keys KeySource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if keys.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
