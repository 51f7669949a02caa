package systems

import (
	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/yohamta/donburi"
)

// actionDirections binds actions to player directions. Only left and right
// are bound; vertical motion comes from jumping.
var actionDirections = map[cfg.ActionID]components.Direction{
	cfg.ActionMoveLeft:  components.Left,
	cfg.ActionMoveRight: components.Right,
}

func getOrCreateInput(w donburi.World) *components.InputData {
	if entry, ok := components.Input.First(w); ok {
		return components.Input.Get(entry)
	}
	entry := w.Entry(w.Create(components.Input))
	return components.Input.Get(entry)
}

// ApplyAction records a key transition for an action.
func ApplyAction(w donburi.World, action cfg.ActionID, down bool) {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	input := getOrCreateInput(w)
	if down && !input.Current[action] {
		input.JustPressed[action] = true
	}
	input.Current[action] = down
}

// UpdateInput folds the input of the frame into the player: held directions
// become the pressed set and a fresh jump press is queued.
func UpdateInput(w donburi.World) error {
	input := getOrCreateInput(w)
	playerEntry, ok := components.Player.First(w)
	if ok {
		player := components.Player.Get(playerEntry)
		for action, dir := range actionDirections {
			player.Pressed[dir] = input.Current[action]
		}
		if input.JustPressed[cfg.ActionJump] {
			player.JumpQueued = true
		}
	}
	input.JustPressed = [cfg.ActionCount]bool{}
	return nil
}

// HeldActions returns the actions currently held down in w.
func HeldActions(w donburi.World) [cfg.ActionCount]bool {
	if entry, ok := components.Input.First(w); ok {
		return components.Input.Get(entry).Current
	}
	return [cfg.ActionCount]bool{}
}

// HoldActions replaces the held actions of w without registering any
// presses, so a key kept down across a level change does not press again.
func HoldActions(w donburi.World, held [cfg.ActionCount]bool) {
	input := getOrCreateInput(w)
	input.Current = held
	input.JustPressed = [cfg.ActionCount]bool{}
}
