package systems

import "github.com/yohamta/donburi"

// System advances one concern of a level world by a frame.
type System func(w donburi.World) error

// Pipeline returns the per-frame systems of a playing level in run order:
// input is folded into the player before the physics step, and contacts of
// the step are handled before the camera follows.
func Pipeline() []System {
	return []System{
		UpdateInput,
		UpdatePlayer,
		UpdatePhysics,
		UpdateContacts,
		UpdateCamera,
	}
}

// Run executes systems in order and stops at the first error.
func Run(w donburi.World, systems []System) error {
	for _, s := range systems {
		if err := s(w); err != nil {
			return err
		}
	}
	return nil
}
