package scenes

import (
	"context"
	"fmt"

	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Session holds what outlives a single level: the level cache, the logger
// and the viewport.
type Session struct {
	ctx      context.Context
	Levels   *level.Cache
	Logger   *log.Logger
	Viewport math.Vec2
	Pointer  math.Vec2

	// OnLevelChange runs exactly when a new level replaces the previous one.
	OnLevelChange func(id uint32)
}

func NewSession(ctx context.Context, levels *level.Cache, logger *log.Logger, viewport math.Vec2) *Session {
	return &Session{
		ctx:      ctx,
		Levels:   levels,
		Logger:   logger,
		Viewport: viewport,
	}
}

// Start returns the state that loads level id with nothing to fall back to.
func (s *Session) Start(id uint32) State {
	return NewLoading(id, nil)
}

// BuildLevel constructs a playable level for id from the level cache.
func (s *Session) BuildLevel(id uint32) (*Playing, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	grid, err := s.Levels.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	if err := factory.CreateWorld(w, id, grid, s.Viewport); err != nil {
		return nil, fmt.Errorf("build level %d: %w", id, err)
	}
	return newPlaying(id, w), nil
}
