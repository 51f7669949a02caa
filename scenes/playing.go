package scenes

import (
	"fmt"

	"github.com/automoto/heaven-and-hell/components"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/automoto/heaven-and-hell/systems"
	"github.com/yohamta/donburi"
)

// Playing is a live level. It exclusively owns its donburi world and the
// physics world inside it.
type Playing struct {
	ID      uint32
	World   donburi.World
	systems []systems.System
}

func newPlaying(id uint32, w donburi.World) *Playing {
	return &Playing{
		ID:      id,
		World:   w,
		systems: systems.Pipeline(),
	}
}

// Physics returns the level's simulation.
func (p *Playing) Physics() *physics.World {
	entry, ok := components.Physics.First(p.World)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry).World
}

// Progression returns the exit trigger state of the level.
func (p *Playing) Progression() *components.ProgressionData {
	entry, ok := components.Progression.First(p.World)
	if !ok {
		return nil
	}
	return components.Progression.Get(entry)
}

// Release discards the level's physics world. Every handle into it becomes
// invalid.
func (p *Playing) Release() {
	if world := p.Physics(); world != nil {
		world.Release()
	}
}

func (p *Playing) handleKey(ev Event) {
	switch ev.Kind {
	case KeyDown:
		systems.ApplyAction(p.World, ev.Action, true)
	case KeyUp:
		systems.ApplyAction(p.World, ev.Action, false)
	}
}

func (s *Session) updatePlaying(p *Playing) (State, error) {
	if err := systems.Run(p.World, p.systems); err != nil {
		return nil, fmt.Errorf("level %d: %w", p.ID, err)
	}

	if prog := p.Progression(); prog != nil && prog.Triggered {
		prog.Triggered = false
		s.Logger.Info("level complete", "id", p.ID)
		return NewLoading(p.ID+1, p), nil
	}
	return nil, nil
}
