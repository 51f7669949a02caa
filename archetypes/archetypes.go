package archetypes

import (
	"github.com/automoto/heaven-and-hell/components"
	"github.com/automoto/heaven-and-hell/tags"
	"github.com/yohamta/donburi"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Physics,
		components.Progression,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	return w.Entry(w.Create(append(all, cs...)...))
}
