package factory

import (
	"github.com/automoto/heaven-and-hell/archetypes"
	"github.com/automoto/heaven-and-hell/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera for a viewport of the given size.
func CreateCamera(w donburi.World, viewport math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Viewport: viewport})
	return camera
}
