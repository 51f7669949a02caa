package systems

import (
	"fmt"

	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Intent sums the unit vectors of the pressed horizontal directions.
func Intent(pressed [components.DirectionCount]bool) float64 {
	x := 0.0
	for d := components.Direction(0); d < components.DirectionCount; d++ {
		if pressed[d] && d.Horizontal() {
			x += d.Vector().X
		}
	}
	return x
}

// TryJump spends one jump if the budget allows it.
func TryJump(p *components.PlayerData) bool {
	if p.JumpCount >= p.MaxJumps {
		return false
	}
	p.JumpCount++
	return true
}

// ResetJumps refills the jump budget.
func ResetJumps(p *components.PlayerData) {
	p.JumpCount = 0
}

// UpdatePlayer turns the player's input into forces: a walk force every
// step while a direction is held, and a jump impulse when a queued jump fits
// the budget.
func UpdatePlayer(w donburi.World) error {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return nil
	}
	world, err := physicsWorld(w)
	if err != nil {
		return err
	}
	player := components.Player.Get(playerEntry)

	intent := Intent(player.Pressed)
	if intent != 0 {
		player.FacingLeft = intent < 0
		if err := world.ApplyForce(player.Body, math.Vec2{X: intent * cfg.Player.WalkForce}); err != nil {
			return fmt.Errorf("walk: %w", err)
		}
	}

	if player.JumpQueued {
		player.JumpQueued = false
		if TryJump(player) {
			if err := world.ApplyImpulse(player.Body, math.Vec2{Y: -cfg.Player.JumpImpulse}); err != nil {
				return fmt.Errorf("jump: %w", err)
			}
		}
	}
	return nil
}
