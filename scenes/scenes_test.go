package scenes

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/logger"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/automoto/heaven-and-hell/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const dropOntoExit = `
bbbbb
bapab
baeab
bbbbb
`

const closedRoom = `
bbbbb
bapab
baaab
bbbbb
`

var errBroken = errors.New("broken level")

func newSession(t *testing.T, levels map[uint32]string) *Session {
	t.Helper()
	source := func(id uint32) (level.Grid, error) {
		text, ok := levels[id]
		if !ok {
			return nil, errBroken
		}
		return level.ParseText(strings.NewReader(text))
	}
	return NewSession(context.Background(), level.NewCache(source), logger.Discard(), math.Vec2{X: 640, Y: 640})
}

func step(t *testing.T, s *Session, st State) State {
	t.Helper()
	next, err := Update(s, st)
	require.NoError(t, err)
	if next != nil {
		return next
	}
	return st
}

func loadTo(t *testing.T, s *Session, st State) *Playing {
	t.Helper()
	for i := 0; i < 200; i++ {
		if l, ok := st.(*Loading); ok {
			l.MarkPresented()
		}
		st = step(t, s, st)
		if p, ok := st.(*Playing); ok {
			return p
		}
	}
	t.Fatal("level never finished loading")
	return nil
}

func TestStartLoadsLevel(t *testing.T) {
	s := newSession(t, map[uint32]string{1: closedRoom})

	st := s.Start(1)
	l, ok := st.(*Loading)
	require.True(t, ok)
	assert.Equal(t, uint32(1), l.Target)
	assert.Nil(t, l.Previous)

	p := loadTo(t, s, st)
	assert.Equal(t, uint32(1), p.ID)
	require.NotNil(t, p.Physics())
	assert.False(t, p.Progression().Enabled)
}

func TestLoadingWaitsForPresentedFrame(t *testing.T) {
	s := newSession(t, map[uint32]string{1: closedRoom})
	st := s.Start(1)

	for i := 0; i < 120; i++ {
		st = step(t, s, st)
	}
	l, ok := st.(*Loading)
	require.True(t, ok, "level must not be built before a loading frame is shown")
	assert.False(t, s.Levels.Has(1))
	assert.Equal(t, float32(1), l.Alpha())

	l.MarkPresented()
	st = step(t, s, st)
	_, ok = st.(*Playing)
	assert.True(t, ok)
}

func TestLoadingFadesIn(t *testing.T) {
	s := newSession(t, map[uint32]string{1: closedRoom})
	l := s.Start(1).(*Loading)
	l.MarkPresented()

	assert.Equal(t, float32(0), l.Alpha())
	step(t, s, l)
	assert.Greater(t, l.Alpha(), float32(0))
	assert.Less(t, l.Alpha(), float32(1))
}

func TestFirstLoadFailureIsFatal(t *testing.T) {
	s := newSession(t, map[uint32]string{})
	st := s.Start(1)
	st.(*Loading).MarkPresented()

	var err error
	for i := 0; i < 200 && err == nil; i++ {
		var next State
		next, err = Update(s, st)
		if next != nil {
			st = next
		}
	}
	assert.ErrorIs(t, err, errBroken)
}

func TestExitAdvancesToNextLevel(t *testing.T) {
	s := newSession(t, map[uint32]string{1: dropOntoExit, 2: closedRoom})
	var changes []uint32
	s.OnLevelChange = func(id uint32) { changes = append(changes, id) }

	first := loadTo(t, s, s.Start(1))
	oldWorld := first.Physics()
	oldPlayer := oldWorld.Player()

	var st State = first
	for i := 0; i < 120; i++ {
		st = step(t, s, st)
		if _, ok := st.(*Loading); ok {
			break
		}
	}
	l, ok := st.(*Loading)
	require.True(t, ok, "touching the exit should start loading the next level")
	assert.Equal(t, uint32(2), l.Target)
	assert.Same(t, first, l.Previous)

	second := loadTo(t, s, st)
	assert.Equal(t, uint32(2), second.ID)
	assert.Equal(t, []uint32{1, 2}, changes)

	assert.True(t, oldWorld.Released())
	assert.False(t, oldWorld.ValidBody(oldPlayer))
	_, err := oldWorld.Velocity(oldPlayer)
	assert.ErrorIs(t, err, physics.ErrStaleHandle)
	assert.False(t, second.Physics().ValidBody(oldPlayer))
}

func TestFailedTransitionKeepsCurrentLevel(t *testing.T) {
	s := newSession(t, map[uint32]string{1: dropOntoExit})
	first := loadTo(t, s, s.Start(1))

	var st State = first
	for i := 0; i < 120; i++ {
		st = step(t, s, st)
		if _, ok := st.(*Loading); ok {
			break
		}
	}
	require.IsType(t, &Loading{}, st)

	back := loadTo(t, s, st)
	assert.Same(t, first, back)
	assert.False(t, back.Physics().Released())
	assert.False(t, back.Progression().Armed)
	assert.False(t, back.Progression().Triggered)

	// Standing on the exit does not retrigger until the player steps off.
	for i := 0; i < 60; i++ {
		next, err := Update(s, back)
		require.NoError(t, err)
		assert.Nil(t, next)
	}
}

func untilLoading(t *testing.T, s *Session, p *Playing) *Loading {
	t.Helper()
	var st State = p
	for i := 0; i < 120; i++ {
		st = step(t, s, st)
		if l, ok := st.(*Loading); ok {
			return l
		}
	}
	t.Fatal("level never started loading")
	return nil
}

func pressed(t *testing.T, p *Playing) [components.DirectionCount]bool {
	t.Helper()
	entry, ok := components.Player.First(p.World)
	require.True(t, ok)
	return components.Player.Get(entry).Pressed
}

func TestKeyReleasedWhileLoadingReachesFallbackLevel(t *testing.T) {
	s := newSession(t, map[uint32]string{1: dropOntoExit})
	first := loadTo(t, s, s.Start(1))

	HandleEvent(s, first, Event{Kind: KeyDown, Action: cfg.ActionMoveRight})
	l := untilLoading(t, s, first)
	assert.True(t, systems.HeldActions(first.World)[cfg.ActionMoveRight])

	HandleEvent(s, l, Event{Kind: KeyUp, Action: cfg.ActionMoveRight})
	back := loadTo(t, s, l)
	require.Same(t, first, back)
	assert.False(t, systems.HeldActions(back.World)[cfg.ActionMoveRight])

	step(t, s, back)
	assert.False(t, pressed(t, back)[components.Right])
}

func TestKeyHeldThroughLoadingCarriesOver(t *testing.T) {
	s := newSession(t, map[uint32]string{1: dropOntoExit, 2: closedRoom})
	first := loadTo(t, s, s.Start(1))

	HandleEvent(s, first, Event{Kind: KeyDown, Action: cfg.ActionMoveRight})
	l := untilLoading(t, s, first)
	HandleEvent(s, l, Event{Kind: KeyDown, Action: cfg.ActionJump})

	second := loadTo(t, s, l)
	require.Equal(t, uint32(2), second.ID)
	held := systems.HeldActions(second.World)
	assert.True(t, held[cfg.ActionMoveRight])
	assert.True(t, held[cfg.ActionJump])

	step(t, s, second)
	assert.True(t, pressed(t, second)[components.Right])

	// A jump held across the change is not a fresh press.
	entry, ok := components.Player.First(second.World)
	require.True(t, ok)
	assert.Zero(t, components.Player.Get(entry).JumpCount)
}

func TestLogsCarryLevelID(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(t, map[uint32]string{1: dropOntoExit, 2: closedRoom})
	lg, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)
	s.Logger = lg

	first := loadTo(t, s, s.Start(1))
	loadTo(t, s, untilLoading(t, s, first))

	out := buf.String()
	assert.Contains(t, out, "level complete")
	assert.Contains(t, out, "id=1")
	assert.Contains(t, out, "id=2")
}

func TestKeyEventsReachPlayer(t *testing.T) {
	s := newSession(t, map[uint32]string{1: closedRoom})
	p := loadTo(t, s, s.Start(1))

	assert.Nil(t, HandleEvent(s, p, Event{Kind: KeyDown, Action: cfg.ActionMoveRight}))
	step(t, s, p)

	entry, ok := components.Player.First(p.World)
	require.True(t, ok)
	assert.True(t, components.Player.Get(entry).Pressed[components.Right])

	HandleEvent(s, p, Event{Kind: KeyUp, Action: cfg.ActionMoveRight})
	step(t, s, p)
	assert.False(t, components.Player.Get(entry).Pressed[components.Right])
}

func TestPointerEventsUpdateSession(t *testing.T) {
	s := newSession(t, map[uint32]string{1: closedRoom})
	st := s.Start(1)

	HandleEvent(s, st, Event{Kind: PointerMoved, X: 12, Y: 34})
	assert.Equal(t, math.Vec2{X: 12, Y: 34}, s.Pointer)
}

func TestCancelledSessionStopsBuilding(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSession(t, map[uint32]string{1: closedRoom})
	s.ctx = ctx

	_, err := s.BuildLevel(1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Levels.Has(1))
}
