package scenes

import (
	"fmt"

	cfg "github.com/automoto/heaven-and-hell/config"
)

// State is one of the level states the game can be in: *Playing or
// *Loading. The set is closed.
type State interface {
	levelState()
}

func (*Playing) levelState() {}
func (*Loading) levelState() {}

// EventKind classifies input events from the frame driver.
type EventKind uint8

const (
	KeyDown EventKind = iota
	KeyUp
	PointerMoved
)

// Event is one input event. Key events carry the action they are bound to,
// pointer events carry the pointer position in screen pixels.
type Event struct {
	Kind   EventKind
	Action cfg.ActionID
	X, Y   float64
}

// Update advances st by one frame. A nil state means stay in st.
func Update(s *Session, st State) (State, error) {
	switch st := st.(type) {
	case *Playing:
		return s.updatePlaying(st)
	case *Loading:
		return s.updateLoading(st)
	}
	return nil, fmt.Errorf("unknown level state %T", st)
}

// HandleEvent applies one input event to st. A nil state means stay in st.
func HandleEvent(s *Session, st State, ev Event) State {
	if ev.Kind == PointerMoved {
		s.Pointer.X, s.Pointer.Y = ev.X, ev.Y
		return nil
	}

	switch st := st.(type) {
	case *Playing:
		st.handleKey(ev)
	case *Loading:
		st.handleKey(ev)
	}
	return nil
}
