package level

import (
	"embed"
	"fmt"
	"io/fs"
	"math"

	"github.com/lafriks/go-tiled"
)

// Embedded holds the hand-authored levels shipped with the game.
//
//go:embed levels/*.tmx
var Embedded embed.FS

const (
	blocksLayer      = "blocks"
	spawnObjectGroup = "PlayerSpawn"
	blockProperty    = "block"
)

// LoadTMX builds a grid from a Tiled map. Tiles on the "blocks" layer map to
// blocks through the "block" property of their tileset tile; empty tiles are
// air. The first object of the "PlayerSpawn" group marks the player start.
func LoadTMX(fsys fs.FS, tmxPath string) (Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == blocksLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, blocksLayer)
	}

	g := NewGrid(levelMap.Width, levelMap.Height, Air)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d at (%d,%d): %w", tmxPath, tile.ID, x, y, err)
			}
			b, err := blockByName(tilesetTile.Properties.GetString(blockProperty))
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile at (%d,%d): %w", tmxPath, x, y, err)
			}
			g.Set(x, y, b)
		}
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnObjectGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		cx := int(math.Floor(o.X / float64(levelMap.TileWidth)))
		cy := int(math.Floor(o.Y / float64(levelMap.TileHeight)))
		if !g.InBounds(cx, cy) {
			return nil, fmt.Errorf("load TMX %s: spawn (%v,%v) outside map", tmxPath, o.X, o.Y)
		}
		g.Set(cx, cy, PlayerStart)
		spawned = true
		break
	}
	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrMissingPlayerStart)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return g, nil
}
