package components

import (
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/yohamta/donburi"
)

// InputData stores the held state of every action plus the presses that
// arrived since the last update. A press and release inside one frame still
// shows up in JustPressed.
type InputData struct {
	Current     [cfg.ActionCount]bool
	JustPressed [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
