package systems

import (
	"fmt"

	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders each paddle's key hint along the bottom edge on its side.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face, ok := fonts.Regular.Lookup()
	if !ok {
		return
	}

	width := screen.Bounds().Dx()
	y := screen.Bounds().Dy() - cfg.UI.HintMargin

	paddles.Each(ecs.World, func(e *donburi.Entry) {
		side := components.Side.Get(e)
		hint := controlsHint(side.Left)

		x := cfg.UI.HintMargin
		if !side.Left {
			x = width - cfg.UI.HintMargin - text.BoundString(face, hint).Dx()
		}
		text.Draw(screen, hint, face, x, y, cfg.UI.HintColor)
	})
}

// controlsHint describes a paddle's bindings, e.g. "W / S".
func controlsHint(left bool) string {
	up, down := cfg.PaddleActions(left)
	return fmt.Sprintf("%s / %s", cfg.Input.Bindings[up].Label, cfg.Input.Bindings[down].Label)
}
