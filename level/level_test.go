package level

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallLevel = `
bbbbb
bpaeb
bbbbb
`

func TestBlockKinds(t *testing.T) {
	assert.True(t, Dirt.Collidable())
	assert.True(t, PlayerEnd.Collidable())
	assert.False(t, Air.Collidable())
	assert.False(t, PlayerStart.Collidable())

	assert.True(t, Dirt.Renderable())
	assert.True(t, PlayerEnd.Renderable())
	assert.False(t, Air.Renderable())
	assert.False(t, PlayerStart.Renderable())
}

func TestParseBlock(t *testing.T) {
	for _, b := range []Block{Dirt, Air, PlayerStart, PlayerEnd} {
		got, err := ParseBlock(b.Rune())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	got, err := ParseBlock('B')
	require.NoError(t, err)
	assert.Equal(t, Dirt, got)

	_, err = ParseBlock('x')
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestParseText(t *testing.T) {
	g, err := ParseText(strings.NewReader(smallLevel))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, PlayerStart, g.At(1, 1))
	assert.Equal(t, Air, g.At(2, 1))
	assert.Equal(t, PlayerEnd, g.At(3, 1))
	assert.Equal(t, strings.TrimPrefix(smallLevel, "\n"), g.String())
}

func TestParseTextErrors(t *testing.T) {
	_, err := ParseText(strings.NewReader("bbb\nbxb\nbbb\n"))
	assert.ErrorIs(t, err, ErrUnknownBlock)

	_, err = ParseText(strings.NewReader("bbb\nbb\n"))
	assert.ErrorIs(t, err, ErrRaggedGrid)

	_, err = ParseText(strings.NewReader("bbb\nbab\nbbb\n"))
	assert.ErrorIs(t, err, ErrMissingPlayerStart)

	_, err = ParseText(strings.NewReader("bbbb\nbppb\nbbbb\n"))
	assert.ErrorIs(t, err, ErrMultiplePlayerStarts)

	_, err = ParseText(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestGridQueries(t *testing.T) {
	g := NewGrid(3, 2, Dirt)
	g.Set(1, 1, PlayerStart)

	assert.Equal(t, 5, g.Count(Dirt))
	assert.Equal(t, []Cell{{X: 1, Y: 1}}, g.Find(PlayerStart))
	assert.Equal(t, Dirt, g.At(-1, 0))
	assert.Equal(t, Dirt, g.At(3, 0))
	assert.False(t, g.InBounds(0, 2))

	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, Cell{X: 1, Y: 1}, start)

	_, err = g.Exit()
	assert.ErrorIs(t, err, ErrMissingPlayerEnd)

	c := g.Clone()
	c.Set(0, 0, Air)
	assert.Equal(t, Dirt, g.At(0, 0))
}

func TestLoadTMXTitle(t *testing.T) {
	g, err := LoadTMX(Embedded, "levels/title.tmx")
	require.NoError(t, err)

	assert.Equal(t, 15, g.Width())
	assert.Equal(t, 9, g.Height())

	start, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, Cell{X: 1, Y: 7}, start)

	exit, err := g.Exit()
	require.NoError(t, err)
	assert.Equal(t, Cell{X: 12, Y: 7}, exit)

	for x := 0; x < g.Width(); x++ {
		assert.Equal(t, Dirt, g.At(x, 0))
		assert.Equal(t, Dirt, g.At(x, g.Height()-1))
	}
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(Embedded, "levels/nope.tmx")
	assert.Error(t, err)
}

func TestNodeSize(t *testing.T) {
	assert.Equal(t, 13, NodeSize(0))
	assert.Equal(t, 15, NodeSize(1))
	assert.Equal(t, 33, NodeSize(10))
}

func TestCacheProducesOnce(t *testing.T) {
	calls := 0
	c := NewCache(func(id uint32) (Grid, error) {
		calls++
		return ParseText(strings.NewReader(smallLevel))
	})

	a, err := c.Get(1)
	require.NoError(t, err)
	b, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, a, b)

	// Callers get copies; the cached grid never changes.
	a.Set(2, 1, Dirt)
	again, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Air, again.At(2, 1))

	c.Clear()
	assert.False(t, c.Has(1))
	_, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheRejectsBadGrids(t *testing.T) {
	boom := errors.New("boom")
	c := NewCache(func(id uint32) (Grid, error) {
		if id == 1 {
			return nil, boom
		}
		return NewGrid(3, 3, Dirt), nil
	})

	_, err := c.Get(1)
	assert.ErrorIs(t, err, boom)
	_, err = c.Get(2)
	assert.ErrorIs(t, err, ErrMissingPlayerStart)
	assert.Equal(t, 0, c.Len())
}

func TestCacheConcurrentReaders(t *testing.T) {
	c := NewCache(func(id uint32) (Grid, error) {
		return ParseText(strings.NewReader(smallLevel))
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := c.Get(3)
			assert.NoError(t, err)
			assert.Equal(t, 1, g.Count(PlayerStart))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
