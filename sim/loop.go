package sim

import (
	"log"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// GameLoop steps a world without a window.
type GameLoop struct {
	world    *ecs.ECS
	tickRate int
	frames   int
	onTick   func(frame int)
	stopChan chan struct{}
}

// NewGameLoop creates a loop for world. A tickRate of zero or less runs
// ticks back to back.
func NewGameLoop(world *ecs.ECS, tickRate int) *GameLoop {
	return &GameLoop{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnTick registers a callback invoked after every tick with the frame number
// (starting at 1).
func (g *GameLoop) OnTick(fn func(frame int)) {
	g.onTick = fn
}

// Frames returns the number of ticks run so far.
func (g *GameLoop) Frames() int {
	return g.frames
}

// Run ticks until Stop is called or maxFrames ticks have run.
// maxFrames <= 0 means no limit.
func (g *GameLoop) Run(maxFrames int) {
	if g.tickRate <= 0 {
		log.Printf("[sim] game loop started, unthrottled")
	} else {
		log.Printf("[sim] game loop started at %d ticks/second", g.tickRate)
	}

	var tick <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for maxFrames <= 0 || g.frames < maxFrames {
		if tick == nil {
			select {
			case <-g.stopChan:
				log.Println("[sim] game loop stopped")
				return
			default:
			}
		} else {
			select {
			case <-g.stopChan:
				log.Println("[sim] game loop stopped")
				return
			case <-tick:
			}
		}
		g.tick()
	}
	log.Printf("[sim] game loop finished after %d frames", g.frames)
}

// RunFrames runs exactly n ticks immediately, ignoring the tick rate.
func (g *GameLoop) RunFrames(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.world.Update()
	g.frames++
	if g.onTick != nil {
		g.onTick(g.frames)
	}
}
