package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/fonts"
	"github.com/automoto/pongpacman/scenes"
	"github.com/automoto/pongpacman/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(cfg.UI.FontSize); err != nil {
		log.Printf("[pong] Warning: HUD text disabled: %v", err)
	}

	return &Game{
		scene: scenes.NewPongScene(systems.EbitenKeys{}, cfg.C.Width, cfg.C.Height),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.IntVar(&cfg.C.Width, "width", cfg.C.Width, "Window and playfield width")
	flag.IntVar(&cfg.C.Height, "height", cfg.C.Height, "Window and playfield height")
	flag.BoolVar(&cfg.Debug.ShowHitboxes, "debug", cfg.Debug.ShowHitboxes, "Start with the hitbox overlay (toggle with F1)")
	flag.Parse()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	// The playfield is sized once at startup
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
