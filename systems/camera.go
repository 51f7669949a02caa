package systems

import (
	stdmath "math"

	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraOffset returns the top-left of a viewport centred on focus and
// clamped so it never leaves the level. A level smaller than the viewport
// pins the offset to 0 on that axis.
func CameraOffset(focus, viewport, levelSize math.Vec2) math.Vec2 {
	return math.Vec2{
		X: clampAxis(focus.X-viewport.X/2, levelSize.X-viewport.X),
		Y: clampAxis(focus.Y-viewport.Y/2, levelSize.Y-viewport.Y),
	}
}

func clampAxis(v, maxV float64) float64 {
	maxV = stdmath.Max(0, maxV)
	return stdmath.Max(0, stdmath.Min(maxV, v))
}

// UpdateCamera centres the camera on the player and stores the player's
// on-screen position.
func UpdateCamera(w donburi.World) error {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return nil
	}
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return nil // no player, keep the camera where it is
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	world, err := physicsWorld(w)
	if err != nil {
		return err
	}

	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	levelData := components.Level.Get(levelEntry)

	bounds, err := world.Bounds(player.Collider)
	if err != nil {
		return err
	}

	if cfg.Camera.ClampToLevel {
		camera.Offset = CameraOffset(bounds.Center(), camera.Viewport, math.Vec2{X: levelData.Width, Y: levelData.Height})
	} else {
		c := bounds.Center()
		camera.Offset = math.Vec2{X: c.X - camera.Viewport.X/2, Y: c.Y - camera.Viewport.Y/2}
	}

	player.Position = math.Vec2{X: bounds.X - camera.Offset.X, Y: bounds.Y - camera.Offset.Y}
	return nil
}
