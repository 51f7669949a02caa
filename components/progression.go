package components

import "github.com/yohamta/donburi"

// ProgressionData tracks the exit trigger of a level.
type ProgressionData struct {
	Enabled   bool // False when the level has no exit
	Armed     bool // Cleared after a failed transition until the player leaves the exit
	Triggered bool
}

var Progression = donburi.NewComponentType[ProgressionData]()
