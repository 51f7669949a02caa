package game

import (
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// binding lists the keys and buttons that trigger an action.
type binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionToggleFullscreen: {
		Keys:                   []ebiten.Key{ebiten.KeyF11},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// poller turns device state into key and pointer events. An action goes down
// when its first bound input is pressed and up when the last one is released.
type poller struct {
	down       [cfg.ActionCount]bool
	gamepads   []ebiten.GamepadID
	cursorX    int
	cursorY    int
	cursorSeen bool
}

func (p *poller) actionPressed(b binding) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range p.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func (p *poller) actionJustPressed(b binding) bool {
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range p.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// Poll appends the events of this frame to events.
func (p *poller) Poll(events []scenes.Event) []scenes.Event {
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])

	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		b, ok := bindings[action]
		if !ok {
			continue
		}
		down := p.actionPressed(b)
		if !down && p.actionJustPressed(b) {
			// Pressed and released within one frame.
			events = append(events,
				scenes.Event{Kind: scenes.KeyDown, Action: action},
				scenes.Event{Kind: scenes.KeyUp, Action: action})
			continue
		}
		if down == p.down[action] {
			continue
		}
		p.down[action] = down
		kind := scenes.KeyUp
		if down {
			kind = scenes.KeyDown
		}
		events = append(events, scenes.Event{Kind: kind, Action: action})
	}

	x, y := ebiten.CursorPosition()
	if !p.cursorSeen || x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY, p.cursorSeen = x, y, true
		events = append(events, scenes.Event{Kind: scenes.PointerMoved, X: float64(x), Y: float64(y)})
	}
	return events
}
