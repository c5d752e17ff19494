package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	PongBall = donburi.NewTag().SetName("PongBall")
)

// Resolv tags for the collision-object mirror
const (
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
)
