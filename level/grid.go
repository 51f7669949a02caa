package level

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid            = errors.New("level grid is empty")
	ErrRaggedGrid           = errors.New("level grid rows differ in length")
	ErrUnknownBlock         = errors.New("unknown block")
	ErrMissingPlayerStart   = errors.New("level has no player start")
	ErrMultiplePlayerStarts = errors.New("level has more than one player start")
	ErrMissingPlayerEnd     = errors.New("level has no player end")
	ErrMultiplePlayerEnds   = errors.New("level has more than one player end")
)

// Cell addresses one block of a grid.
type Cell struct {
	X, Y int
}

func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a rectangular block grid indexed [y][x].
type Grid [][]Block

// NewGrid returns a w by h grid where every cell holds fill.
func NewGrid(w, h int, fill Block) Grid {
	g := make(Grid, h)
	for y := range g {
		row := make([]Block, w)
		for x := range row {
			row[x] = fill
		}
		g[y] = row
	}
	return g
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// At returns the block at (x, y). Out of bounds cells read as Dirt so the
// level behaves as if surrounded by solid ground.
func (g Grid) At(x, y int) Block {
	if !g.InBounds(x, y) {
		return Dirt
	}
	return g[y][x]
}

func (g Grid) Set(x, y int, b Block) {
	g[y][x] = b
}

// Count returns how many cells hold b.
func (g Grid) Count(b Block) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == b {
				n++
			}
		}
	}
	return n
}

// Find returns every cell holding b in row-major order.
func (g Grid) Find(b Block) []Cell {
	var cells []Cell
	for y, row := range g {
		for x, cell := range row {
			if cell == b {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Start returns the single player start cell.
func (g Grid) Start() (Cell, error) {
	return g.single(PlayerStart, ErrMissingPlayerStart, ErrMultiplePlayerStarts)
}

// Exit returns the single player end cell.
func (g Grid) Exit() (Cell, error) {
	return g.single(PlayerEnd, ErrMissingPlayerEnd, ErrMultiplePlayerEnds)
}

func (g Grid) single(b Block, missing, multiple error) (Cell, error) {
	cells := g.Find(b)
	switch len(cells) {
	case 0:
		return Cell{}, missing
	case 1:
		return cells[0], nil
	}
	return Cell{}, fmt.Errorf("%w: found %d", multiple, len(cells))
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]Block(nil), row...)
	}
	return c
}

// Validate checks the grid is rectangular and holds exactly one player start
// and at most one player end.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for y, row := range g {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), w)
		}
	}
	if _, err := g.Start(); err != nil {
		return err
	}
	if n := g.Count(PlayerEnd); n > 1 {
		return fmt.Errorf("%w: found %d", ErrMultiplePlayerEnds, n)
	}
	return nil
}
