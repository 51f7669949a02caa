package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionToggleFullscreen
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionMoveLeft:         "move_left",
	ActionMoveRight:        "move_right",
	ActionJump:             "jump",
	ActionToggleDebug:      "toggle_debug",
	ActionToggleFullscreen: "toggle_fullscreen",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
