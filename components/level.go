package components

import (
	"github.com/automoto/heaven-and-hell/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	ID     uint32
	Grid   level.Grid
	Width  float64 // Level size in pixels
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
