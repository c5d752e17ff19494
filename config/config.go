package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PaddleConfig contains paddle spawn and control values
type PaddleConfig struct {
	Width  float64
	Height float64
	Speed  float64 // Vertical speed while a key is held (units/frame)

	// Initial velocity applied at spawn
	InitialVelocityX float64
	InitialVelocityY float64
}

// BallConfig contains ball spawn and bounce values
type BallConfig struct {
	Size float64

	InitialVelocityX float64
	InitialVelocityY float64

	BounceSpeed     float64 // Outgoing speed after a paddle hit or side-wall reset
	CorrectionSteps int     // Max sub-steps used to push the ball out of a paddle
}

// FlashConfig contains the paddle hit flash effect
type FlashConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool // Start with the hitbox overlay enabled
}

// UIConfig contains HUD values
type UIConfig struct {
	FontSize    float64
	HintMargin  int
	HintColor   color.RGBA
	PausedColor color.RGBA
}

// Global configuration instances
var C *Config
var Paddle PaddleConfig
var Ball BallConfig
var Flash FlashConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  700,
		Height: 700,
		Title:  "Pong Pacman!",
	}

	Paddle = PaddleConfig{
		Width:            30,
		Height:           150,
		Speed:            5,
		InitialVelocityX: 0,
		InitialVelocityY: 1,
	}

	Ball = BallConfig{
		Size:             15,
		InitialVelocityX: 5,
		InitialVelocityY: 0,
		BounceSpeed:      3.85,
		CorrectionSteps:  3,
	}

	Flash = FlashConfig{
		Duration: 0.25,
		Color:    LightBlue,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}

	UI = UIConfig{
		FontSize:    14,
		HintMargin:  12,
		HintColor:   Grey,
		PausedColor: White,
	}
}
