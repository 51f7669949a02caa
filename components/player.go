package components

import (
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Body     physics.BodyHandle
	Collider physics.ColliderHandle

	Pressed    [DirectionCount]bool // Directions currently held
	JumpQueued bool                 // Jump was pressed since the last update

	JumpCount  int
	MaxJumps   int
	Airborne   bool // Drives the standing/flying sprite
	FacingLeft bool // Drives sprite mirroring

	Position math.Vec2 // Top-left of the collider on screen, camera applied
	Momentum math.Vec2 // Body velocity after the last step
}

var Player = donburi.NewComponentType[PlayerData]()
