package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Offset   math.Vec2 // Top-left of the visible area in world space
	Viewport math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
