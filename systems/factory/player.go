package factory

import (
	"github.com/automoto/heaven-and-hell/archetypes"
	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player entity bound to the world's dynamic body.
func CreatePlayer(w donburi.World, world *physics.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, components.PlayerData{
		Body:     world.Player(),
		Collider: world.PlayerCollider(),
		MaxJumps: cfg.Player.MaxJumps,
		Airborne: true,
	})
	return player
}

// CreateInput spawns the input state entity.
func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}
