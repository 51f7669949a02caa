package components

import (
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the level's simulation. The level entity owns it
// exclusively.
type PhysicsData struct {
	World *physics.World
}

var Physics = donburi.NewComponentType[PhysicsData]()
