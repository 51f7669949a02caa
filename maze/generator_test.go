package maze

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/automoto/heaven-and-hell/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizes = []struct{ w, h int }{
	{1, 1}, {2, 1}, {1, 2}, {3, 3}, {5, 2}, {7, 11}, {13, 13}, {20, 4},
}

func open(b level.Block) bool {
	return b == level.Air || b == level.PlayerStart
}

func TestGenerateShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range sizes {
		g, err := Generate(rng, s.w, s.h)
		require.NoError(t, err)
		assert.Equal(t, 2*s.w+1, g.Width(), "width for %dx%d", s.w, s.h)
		assert.Equal(t, 2*s.h+1, g.Height(), "height for %dx%d", s.w, s.h)
		require.NoError(t, g.Validate())
	}
}

func TestGenerateSingleStartNoEnd(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, s := range sizes {
			g, err := Generate(rng, s.w, s.h)
			require.NoError(t, err)
			assert.Equal(t, 1, g.Count(level.PlayerStart))
			assert.Equal(t, 0, g.Count(level.PlayerEnd))
		}
	}
}

func TestGenerateSealedBorder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, s := range sizes {
		g, err := Generate(rng, s.w, s.h)
		require.NoError(t, err)
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, level.Dirt, g.At(x, 0))
			assert.Equal(t, level.Dirt, g.At(x, g.Height()-1))
		}
		for y := 0; y < g.Height(); y++ {
			assert.Equal(t, level.Dirt, g.At(0, y))
			assert.Equal(t, level.Dirt, g.At(g.Width()-1, y))
		}
	}
}

func TestGenerateConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, s := range sizes {
			g, err := Generate(rng, s.w, s.h)
			require.NoError(t, err)

			start, err := g.Start()
			require.NoError(t, err)
			reached := Distances(g, start)

			openCells := 0
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					if open(g.At(x, y)) {
						openCells++
						_, ok := reached[level.Cell{X: x, Y: y}]
						assert.True(t, ok, "cell (%d,%d) unreachable in %dx%d seed %d", x, y, s.w, s.h, seed)
					}
				}
			}
			assert.Equal(t, openCells, len(reached))
		}
	}
}

func TestGenerateSpanningTree(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, s := range sizes {
			g, err := Generate(rng, s.w, s.h)
			require.NoError(t, err)

			// Every node is open.
			for ny := 0; ny < s.h; ny++ {
				for nx := 0; nx < s.w; nx++ {
					assert.True(t, open(g.At(2*nx+1, 2*ny+1)))
				}
			}

			// Walls sit between nodes at exactly one even coordinate.
			carved := 0
			for y := 1; y < g.Height()-1; y++ {
				for x := 1; x < g.Width()-1; x++ {
					if (x%2 == 0) != (y%2 == 0) && open(g.At(x, y)) {
						carved++
					}
				}
			}
			assert.Equal(t, s.w*s.h-1, carved, "carved walls for %dx%d seed %d", s.w, s.h, seed)

			// Lattice points between four nodes are never carved.
			for y := 2; y < g.Height()-1; y += 2 {
				for x := 2; x < g.Width()-1; x += 2 {
					assert.Equal(t, level.Dirt, g.At(x, y))
				}
			}
		}
	}
}

func TestGenerateOneByOne(t *testing.T) {
	g, err := Generate(rand.New(rand.NewSource(3)), 1, 1)
	require.NoError(t, err)

	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())
	assert.Equal(t, level.PlayerStart, g.At(1, 1))
	assert.Equal(t, 8, g.Count(level.Dirt))
}

func TestGenerateTwoByOne(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := Generate(rand.New(rand.NewSource(seed)), 2, 1)
		require.NoError(t, err)

		require.Equal(t, 5, g.Width())
		require.Equal(t, 3, g.Height())
		assert.Equal(t, 1, g.Count(level.PlayerStart))
		assert.True(t, open(g.At(1, 1)))
		assert.True(t, open(g.At(3, 1)))
		assert.Equal(t, level.Air, g.At(2, 1))
		assert.Equal(t, 2, g.Count(level.Air))
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(42)), 9, 6)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(42)), 9, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range []struct{ w, h int }{{0, 1}, {1, 0}, {0, 0}, {-1, 3}} {
		_, err := Generate(rng, s.w, s.h)
		assert.ErrorIs(t, err, ErrInvalidMazeRequest)
	}

	_, err := Generate(nil, 2, 2)
	assert.ErrorIs(t, err, ErrNilRand)
}

func TestPlaceExitFarthestNode(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := Generate(rand.New(rand.NewSource(seed)), 6, 4)
		require.NoError(t, err)

		start, err := g.Start()
		require.NoError(t, err)
		before := Distances(g, start)

		exit, err := PlaceExit(g)
		require.NoError(t, err)
		assert.Equal(t, level.PlayerEnd, g.At(exit.X, exit.Y))
		assert.Equal(t, 1, g.Count(level.PlayerEnd))
		assert.Equal(t, 1, exit.X%2)
		assert.Equal(t, 1, exit.Y%2)

		for c, d := range before {
			assert.LessOrEqual(t, d, before[exit], "cell %v is farther than the exit", c)
		}

		// Placing a second exit is refused.
		_, err = PlaceExit(g)
		assert.ErrorIs(t, err, level.ErrMultiplePlayerEnds)
	}
}

func TestPlaceExitNeedsSecondNode(t *testing.T) {
	g, err := Generate(rand.New(rand.NewSource(1)), 1, 1)
	require.NoError(t, err)

	_, err = PlaceExit(g)
	assert.ErrorIs(t, err, ErrNoExitCandidate)
}

func TestLevelSource(t *testing.T) {
	src := NewLevelSource(rand.New(rand.NewSource(5)), level.Embedded)

	title, err := src(0)
	require.NoError(t, err)
	assert.Equal(t, 1, title.Count(level.PlayerEnd))

	g, err := src(2)
	require.NoError(t, err)
	size := level.NodeSize(2)
	assert.Equal(t, 2*size+1, g.Width())
	assert.Equal(t, 2*size+1, g.Height())
	assert.Equal(t, 1, g.Count(level.PlayerStart))
	assert.Equal(t, 1, g.Count(level.PlayerEnd))
}

func TestLevelSourceMissingTitle(t *testing.T) {
	src := NewLevelSource(rand.New(rand.NewSource(5)), fstest.MapFS{})
	_, err := src(0)
	assert.Error(t, err)
}
