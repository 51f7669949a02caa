package scenes

import (
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Loading shows the loading indicator while the target level is built. The
// build starts only after the indicator has been presented and its fade-in
// has finished, and then runs to completion within one update.
type Loading struct {
	Target   uint32
	Previous *Playing // Shown again if the build fails; nil on the first load

	// held tracks the actions kept down while loading; the level shown
	// next starts with them held.
	held      [cfg.ActionCount]bool
	fade      *gween.Tween
	alpha     float32
	faded     bool
	presented bool
}

func NewLoading(target uint32, previous *Playing) *Loading {
	l := &Loading{
		Target:   target,
		Previous: previous,
		fade:     gween.New(0, 1, float32(cfg.Loading.FadeSeconds), ease.OutQuad),
	}
	if previous != nil {
		l.held = systems.HeldActions(previous.World)
	}
	return l
}

func (l *Loading) handleKey(ev Event) {
	if ev.Action <= cfg.ActionNone || ev.Action >= cfg.ActionCount {
		return
	}
	switch ev.Kind {
	case KeyDown:
		l.held[ev.Action] = true
	case KeyUp:
		l.held[ev.Action] = false
	}
}

// MarkPresented records that a loading frame has reached the screen.
func (l *Loading) MarkPresented() {
	l.presented = true
}

// Presented reports whether a loading frame has been shown.
func (l *Loading) Presented() bool {
	return l.presented
}

// Alpha is the opacity of the loading overlay, from 0 to 1.
func (l *Loading) Alpha() float32 {
	if l.faded {
		return 1
	}
	return l.alpha
}

func (s *Session) updateLoading(l *Loading) (State, error) {
	if !l.faded {
		l.alpha, l.faded = l.fade.Update(float32(cfg.Physics.TimeStep))
	}
	if !l.presented || !l.faded {
		return nil, nil
	}

	next, err := s.BuildLevel(l.Target)
	if err != nil {
		if l.Previous == nil {
			return nil, err
		}
		s.Logger.Error("could not build level, staying on current level", "id", l.Target, "error", err)
		if prog := l.Previous.Progression(); prog != nil {
			prog.Triggered = false
			prog.Armed = false
		}
		systems.HoldActions(l.Previous.World, l.held)
		return l.Previous, nil
	}

	systems.HoldActions(next.World, l.held)
	if l.Previous != nil {
		l.Previous.Release()
	}
	if s.OnLevelChange != nil {
		s.OnLevelChange(l.Target)
	}
	s.Logger.Info("level loaded", "id", l.Target)
	return next, nil
}
