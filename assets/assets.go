package assets

import (
	"math/rand"

	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/pixelart"
	"github.com/automoto/heaven-and-hell/tileset"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureCache holds the GPU images of the current level, one per tile
// coordinate. It is emptied when a new level is loaded.
type TextureCache struct {
	tiles   *tileset.Set
	blocks  map[level.Cell]*ebiten.Image
	players map[playerPose]*ebiten.Image
	loading *ebiten.Image
}

type playerPose struct {
	flying, facingLeft bool
}

func NewTextureCache(tiles *tileset.Set) *TextureCache {
	return &TextureCache{
		tiles:   tiles,
		blocks:  make(map[level.Cell]*ebiten.Image),
		players: make(map[playerPose]*ebiten.Image),
	}
}

// Resolve returns the texture for block b drawn at world position (x, y).
func (c *TextureCache) Resolve(b level.Block, x, y float64) (*ebiten.Image, error) {
	cell := level.Cell{
		X: int(x / cfg.Physics.BlockSize),
		Y: int(y / cfg.Physics.BlockSize),
	}
	if img, ok := c.blocks[cell]; ok {
		return img, nil
	}

	src, err := c.tiles.Tile(b, cell)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	c.blocks[cell] = img
	return img, nil
}

// Player returns the sprite for one of the four player poses.
func (c *TextureCache) Player(flying, facingLeft bool) *ebiten.Image {
	pose := playerPose{flying: flying, facingLeft: facingLeft}
	if img, ok := c.players[pose]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(c.tiles.Player(flying, facingLeft))
	c.players[pose] = img
	return img
}

// Loading returns the loading screen image, generating it on first use.
func (c *TextureCache) Loading() *ebiten.Image {
	if c.loading == nil {
		rng := rand.New(rand.NewSource(cfg.Debug.Seed))
		c.loading = ebiten.NewImageFromImage(pixelart.LoadingImage(cfg.Loading.ImageSize, rng))
	}
	return c.loading
}

// Len returns the number of cached block textures.
func (c *TextureCache) Len() int {
	return len(c.blocks)
}

// Reset drops every block texture. Player and loading images are kept.
func (c *TextureCache) Reset() {
	for cell, img := range c.blocks {
		img.Deallocate()
		delete(c.blocks, cell)
	}
}
