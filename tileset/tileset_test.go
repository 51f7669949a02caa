package tileset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTileSizes(t *testing.T) {
	s, err := New(1, nil)
	require.NoError(t, err)

	side := int(cfg.Physics.BlockSize)
	for _, b := range []level.Block{level.Dirt, level.PlayerEnd} {
		img, err := s.Tile(b, level.Cell{X: 2, Y: 3})
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, side, side), img.Bounds(), b.String())
	}
}

func TestNonRenderableBlocks(t *testing.T) {
	s, err := New(1, nil)
	require.NoError(t, err)

	for _, b := range []level.Block{level.Air, level.PlayerStart} {
		_, err := s.Tile(b, level.Cell{})
		assert.ErrorIs(t, err, ErrNoTexture, b.String())
	}
}

func TestDirtIsStablePerCell(t *testing.T) {
	a, err := New(5, nil)
	require.NoError(t, err)
	b, err := New(5, nil)
	require.NoError(t, err)

	x, err := a.Tile(level.Dirt, level.Cell{X: 4, Y: 1})
	require.NoError(t, err)
	y, err := b.Tile(level.Dirt, level.Cell{X: 4, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, x.Pix, y.Pix)
}

func TestOverrides(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	fsys := fstest.MapFS{
		cfg.Assets.DirtFile: {Data: encodePNG(t, red)},
	}
	s, err := New(1, fsys)
	require.NoError(t, err)

	img, err := s.Tile(level.Dirt, level.Cell{X: 9, Y: 9})
	require.NoError(t, err)
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(31, 31))

	// No grave override on disk, so the built-in tile is used.
	_, err = s.Tile(level.PlayerEnd, level.Cell{})
	assert.NoError(t, err)
}

func TestBrokenOverride(t *testing.T) {
	fsys := fstest.MapFS{
		cfg.Assets.GraveFile: {Data: []byte("not a png")},
	}
	_, err := New(1, fsys)
	assert.ErrorIs(t, err, ErrAssetLoad)
}

func TestPlayerSprites(t *testing.T) {
	s, err := New(1, nil)
	require.NoError(t, err)

	want := image.Rect(0, 0, cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	right := s.Player(false, false)
	left := s.Player(false, true)
	assert.Equal(t, want, right.Bounds())
	assert.Equal(t, want, left.Bounds())
	assert.Equal(t, right.RGBAAt(0, 10), left.RGBAAt(cfg.Player.FrameWidth-1, 10))
	assert.Equal(t, want, s.Player(true, false).Bounds())
}
