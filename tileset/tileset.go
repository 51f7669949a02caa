package tileset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/pixelart"
)

var (
	ErrNoTexture = errors.New("block has no texture")
	ErrAssetLoad = errors.New("could not load asset")
)

// Set produces block art for every cell of a level. Dirt comes from a seeded
// noise field unless an override image is supplied; the exit always uses the
// grave tile or its override.
type Set struct {
	terrain *pixelart.Terrain
	dirt    image.Image
	grave   image.Image
	scale   int
}

// New returns a Set for seed. Overrides are read from fsys when it is not nil;
// files that do not exist are skipped.
func New(seed int64, fsys fs.FS) (*Set, error) {
	s := &Set{
		terrain: pixelart.NewTerrain(seed),
		scale:   int(cfg.Physics.BlockSize) / cfg.Assets.SourceTile,
	}
	if s.scale < 1 {
		s.scale = 1
	}
	if fsys == nil {
		return s, nil
	}

	var err error
	if s.dirt, err = loadOverride(fsys, cfg.Assets.DirtFile); err != nil {
		return nil, err
	}
	if s.grave, err = loadOverride(fsys, cfg.Assets.GraveFile); err != nil {
		return nil, err
	}
	return s, nil
}

func loadOverride(fsys fs.FS, path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	f, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, path, err)
	}
	return img, nil
}

// Tile returns the art for block b at cell c, sized to one grid cell.
// Blocks that are not drawn return ErrNoTexture.
func (s *Set) Tile(b level.Block, c level.Cell) (*image.RGBA, error) {
	var src image.Image
	switch b {
	case level.Dirt:
		src = s.dirt
		if src == nil {
			src = s.terrain.DirtTile(c.X, c.Y)
		}
	case level.PlayerEnd:
		src = s.grave
		if src == nil {
			src = pixelart.GraveTile()
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoTexture, b)
	}
	return pixelart.Upscale(src, s.scale), nil
}

// Player returns the player sprite scaled to the configured frame width.
func (s *Set) Player(flying, facingLeft bool) *image.RGBA {
	img := pixelart.PlayerSprite(flying)
	if facingLeft {
		img = pixelart.Mirror(img)
	}
	return pixelart.Upscale(img, cfg.Player.FrameWidth/img.Bounds().Dx())
}
