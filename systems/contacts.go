package systems

import (
	"github.com/automoto/heaven-and-hell/components"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
)

// UpdateContacts acts on the contacts of the last step. Any started contact
// naming the player refills its jumps and marks it grounded; a started
// contact between exactly the player and the exit fires progression.
func UpdateContacts(w donburi.World) error {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return nil
	}
	world, err := physicsWorld(w)
	if err != nil {
		return err
	}
	player := components.Player.Get(playerEntry)

	var progression *components.ProgressionData
	if entry, ok := components.Progression.First(w); ok {
		progression = components.Progression.Get(entry)
	}
	exit, hasExit := world.Exit()

	player.Airborne = true
	for _, e := range world.Contacts() {
		if !e.Involves(player.Collider) {
			continue
		}
		switch e.Kind {
		case physics.ContactStarted:
			ResetJumps(player)
			player.Airborne = false
			if hasExit && progression != nil && progression.Enabled && progression.Armed && e.Is(player.Collider, exit) {
				progression.Triggered = true
			}
		case physics.ContactStopped:
			if hasExit && progression != nil && e.Is(player.Collider, exit) {
				progression.Armed = true
			}
		}
	}
	return nil
}
