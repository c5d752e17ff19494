package systems

import (
	"image/color"

	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startFlash restarts the hit flash on e. Entities without a Flash component
// are ignored.
func startFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Tween = gween.New(1, 0, cfg.Flash.Duration, ease.OutQuad)
	flash.Intensity = 1
}

// UpdateFlash decays active hit flashes by one tick.
func UpdateFlash(ecs *ecs.ECS) {
	dt := float32(1) / float32(ebiten.TPS())

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}

		current, finished := flash.Tween.Update(dt)
		flash.Intensity = float64(current)
		if finished {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

// flashColor blends base toward the flash color by intensity.
func flashColor(base color.RGBA, intensity float64) color.RGBA {
	if intensity <= 0 {
		return base
	}
	if intensity > 1 {
		intensity = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*intensity)
	}
	target := cfg.Flash.Color
	return color.RGBA{
		R: lerp(base.R, target.R),
		G: lerp(base.G, target.G),
		B: lerp(base.B, target.B),
		A: lerp(base.A, target.A),
	}
}
