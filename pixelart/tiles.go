package pixelart

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// TileSize is the side of a source tile in pixels.
const TileSize = 8

var dirtPalette = []color.RGBA{
	{R: 58, G: 34, B: 22, A: 255},
	{R: 84, G: 52, B: 30, A: 255},
	{R: 110, G: 70, B: 40, A: 255},
	{R: 136, G: 92, B: 54, A: 255},
}

// Terrain generates dirt tiles from a seeded noise field. Neighbouring tiles
// sample neighbouring parts of the field, so they join without seams.
type Terrain struct {
	noise *perlin.Perlin
}

func NewTerrain(seed int64) *Terrain {
	return &Terrain{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// DirtTile returns the TileSize x TileSize dirt tile at tile coordinate
// (tx, ty).
func (t *Terrain) DirtTile(tx, ty int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			fx := float64(tx*TileSize+x) / TileSize
			fy := float64(ty*TileSize+y) / TileSize
			v := (t.noise.Noise2D(fx, fy) + 1) / 2
			img.SetRGBA(x, y, dirtPalette[paletteIndex(v, len(dirtPalette))])
		}
	}
	return img
}

func paletteIndex(v float64, n int) int {
	i := int(v * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Sprite rows use '.' for transparent and a palette key for everything else.
var spriteColors = map[byte]color.RGBA{
	'k': {R: 20, G: 16, B: 24, A: 255},
	'g': {R: 120, G: 120, B: 130, A: 255},
	'l': {R: 170, G: 170, B: 180, A: 255},
	's': {R: 238, G: 196, B: 160, A: 255},
	'w': {R: 240, G: 240, B: 240, A: 255},
	'r': {R: 190, G: 40, B: 40, A: 255},
	'b': {R: 50, G: 60, B: 140, A: 255},
	'm': {R: 70, G: 100, B: 40, A: 255},
}

var graveRows = []string{
	"mm.gg.mm",
	"..glgg..",
	".gglkgg.",
	".gkkkkg.",
	".gglkgg.",
	".gglggg.",
	".gggggg.",
	"mmmmmmmm",
}

var standingRows = []string{
	"..kkkk..",
	".kssssk.",
	".ksksk..",
	".kssssk.",
	"..kkkk..",
	"..rrrr..",
	".rrrrrr.",
	"srrrrrrs",
	"s.rrrr.s",
	"..rrrr..",
	"..bbbb..",
	"..b..b..",
	"..b..b..",
	"..b..b..",
	".kk..kk.",
	"........",
}

var flyingRows = []string{
	"..kkkk..",
	".kssssk.",
	".ksksk..",
	".kssssk.",
	"s.kkkk.s",
	"srrrrrrs",
	".rrrrrr.",
	"..rrrr..",
	"..rrrr..",
	"..rrrr..",
	"..bbbb..",
	".bb..bb.",
	".b....b.",
	"kk....kk",
	"........",
	"........",
}

// GraveTile returns the exit marker tile.
func GraveTile() *image.RGBA {
	return fromRows(graveRows)
}

// PlayerSprite returns the player facing right, standing or in the air.
func PlayerSprite(flying bool) *image.RGBA {
	if flying {
		return fromRows(flyingRows)
	}
	return fromRows(standingRows)
}

func fromRows(rows []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if c, ok := spriteColors[row[x]]; ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
