package maze

import (
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
)

// NewLevelSource returns the level source used by the game: level 0 is the
// hand-authored title level read from titles, every other id is a maze
// whose node size grows with the id and whose exit sits at the dead end
// farthest from the start.
func NewLevelSource(rng *rand.Rand, titles fs.FS) level.Source {
	return func(id uint32) (level.Grid, error) {
		if id == 0 {
			return level.LoadTMX(titles, config.Level.TitleLevel)
		}

		size := level.NodeSize(id)
		grid, err := Generate(rng, size, size)
		if err != nil {
			return nil, err
		}
		if _, err := PlaceExit(grid); err != nil {
			return nil, fmt.Errorf("place exit: %w", err)
		}
		return grid, nil
	}
}
