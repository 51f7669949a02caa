package systems

import (
	"errors"

	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
)

var ErrNoPhysicsWorld = errors.New("level has no physics world")

func physicsWorld(w donburi.World) (*physics.World, error) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return nil, ErrNoPhysicsWorld
	}
	data := components.Physics.Get(entry)
	if data.World == nil {
		return nil, ErrNoPhysicsWorld
	}
	return data.World, nil
}

// UpdatePhysics advances the level simulation by one fixed tick.
func UpdatePhysics(w donburi.World) error {
	world, err := physicsWorld(w)
	if err != nil {
		return err
	}
	if err := world.Step(cfg.Physics.TimeStep); err != nil {
		return err
	}

	if playerEntry, ok := components.Player.First(w); ok {
		player := components.Player.Get(playerEntry)
		v, err := world.Velocity(player.Body)
		if err != nil {
			return err
		}
		player.Momentum = v
	}
	return nil
}
