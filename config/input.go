package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionLeftUp:    "left-up",
	ActionLeftDown:  "left-down",
	ActionRightUp:   "right-up",
	ActionRightDown: "right-down",
	ActionPause:     "pause",
	ActionDebug:     "debug",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ActionByName looks up an action by its String form.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys  []ebiten.Key
	Label string // Shown in the controls hint
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// PaddleActions returns the (up, down) actions controlling a paddle.
func PaddleActions(left bool) (up, down ActionID) {
	if left {
		return ActionLeftUp, ActionLeftDown
	}
	return ActionRightUp, ActionRightDown
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeftUp: {
				Keys:  []ebiten.Key{ebiten.KeyW},
				Label: "W",
			},
			ActionLeftDown: {
				Keys:  []ebiten.Key{ebiten.KeyS},
				Label: "S",
			},
			ActionRightUp: {
				Keys:  []ebiten.Key{ebiten.KeyO},
				Label: "O",
			},
			ActionRightDown: {
				Keys:  []ebiten.Key{ebiten.KeyL},
				Label: "L",
			},
			ActionPause: {
				Keys:  []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				Label: "P",
			},
			ActionDebug: {
				Keys:  []ebiten.Key{ebiten.KeyF1},
				Label: "F1",
			},
		},
	}
}
