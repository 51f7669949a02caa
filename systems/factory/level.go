package factory

import (
	"fmt"

	"github.com/automoto/heaven-and-hell/archetypes"
	"github.com/automoto/heaven-and-hell/components"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel spawns the level entity with a freshly built physics world for
// grid.
func CreateLevel(w donburi.World, id uint32, grid level.Grid) (*donburi.Entry, error) {
	world, err := physics.Build(grid, physics.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	width, height := world.Size()
	_, hasExit := world.Exit()

	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{
		ID:     id,
		Grid:   grid,
		Width:  width,
		Height: height,
	})
	components.Physics.SetValue(entry, components.PhysicsData{World: world})
	components.Progression.SetValue(entry, components.ProgressionData{
		Enabled: hasExit,
		Armed:   true,
	})
	return entry, nil
}

// CreateWorld builds every entity of a playable level into w.
func CreateWorld(w donburi.World, id uint32, grid level.Grid, viewport math.Vec2) error {
	levelEntry, err := CreateLevel(w, id, grid)
	if err != nil {
		return err
	}
	world := components.Physics.Get(levelEntry).World
	CreatePlayer(w, world)
	CreateCamera(w, viewport)
	CreateInput(w)
	return nil
}
