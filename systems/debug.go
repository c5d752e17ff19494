package systems

import (
	"image/color"

	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Playfield center lines
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, w/2, 0, 1, h, cfg.Grey, false)
	vector.FillRect(screen, 0, h/2, w, 1, cfg.Grey, false)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvBall) {
			c = cfg.Green
			// Broadphase agrees the ball is touching a paddle
			if obj.Check(0, 0, tags.ResolvPaddle) != nil {
				c = cfg.Red
			}
		}

		strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, c)
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
