package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/systems"
	"github.com/automoto/pongpacman/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv space grid cell in pixels.
const collisionCellSize = 16

type PongScene struct {
	ecs    *ecs.ECS
	keys   systems.KeySource
	width  int
	height int
	once   sync.Once
}

// NewPongScene creates the game scene. The playfield takes the given size and
// keeps it for the life of the scene.
func NewPongScene(keys systems.KeySource, width, height int) *PongScene {
	return &PongScene{keys: keys, width: width, height: height}
}

func (ps *PongScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PongScene) configure() {
	ps.ecs = NewPongWorld(ps.keys, ps.width, ps.height)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	log.Printf("[pong] playfield %dx%d", ps.width, ps.height)
}

// NewPongWorld builds a world with the simulation systems registered and
// both paddles and the ball spawned. It has no renderers, so it can be
// stepped headless.
func NewPongWorld(keys systems.KeySource, width, height int) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.NewInputSystem(keys))
	ecs.AddSystem(systems.UpdatePause)

	// Simulation, in order: integrate, then steer paddles and resolve the ball
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBallCollision))

	// Presentation state
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFlash))

	// Playfield must exist before anything is placed on it
	factory.CreatePlayfield(ecs, float64(width), float64(height))
	factory.CreateSpace(ecs, width, height, collisionCellSize, collisionCellSize)

	factory.CreatePaddles(ecs)
	factory.CreateServeBall(ecs)

	return ecs
}
