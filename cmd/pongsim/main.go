package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/scenes"
	"github.com/automoto/pongpacman/sim"
	"github.com/automoto/pongpacman/systems"
)

func main() {
	width := flag.Int("width", cfg.C.Width, "Playfield width")
	height := flag.Int("height", cfg.C.Height, "Playfield height")
	frames := flag.Int("frames", 600, "Frames to simulate (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	every := flag.Int("every", 60, "Log the ball every N frames")
	hold := flag.String("hold", "", "Comma-separated actions held for the whole run (e.g. left-up,right-down)")
	flag.Parse()

	keys := systems.KeySet{}
	if *hold != "" {
		for _, name := range strings.Split(*hold, ",") {
			action, ok := cfg.ActionByName(strings.TrimSpace(name))
			if !ok {
				log.Fatalf("[sim] unknown action %q", name)
			}
			keys.Press(action)
		}
	}

	world := scenes.NewPongWorld(keys, *width, *height)
	loop := sim.NewGameLoop(world, *tickRate)

	if *every > 0 {
		loop.OnTick(func(frame int) {
			if frame%*every != 0 {
				return
			}
			ball := systems.MustSingleBall(world.World)
			pos := components.Transform.Get(ball).Translation
			vel := components.Velocity.Get(ball)
			log.Printf("[sim] frame %d ball pos=(%.2f, %.2f) vel=(%.2f, %.2f)",
				frame, pos.X, pos.Y, vel.X, vel.Y)
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		loop.Stop()
	}()

	loop.Run(*frames)
}
