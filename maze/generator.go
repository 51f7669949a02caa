package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/heaven-and-hell/level"
)

var (
	ErrInvalidMazeRequest = errors.New("maze node size must be at least 1x1")
	ErrNilRand            = errors.New("maze generator needs a random source")
	ErrNoExitCandidate    = errors.New("maze has no node to place an exit on")
)

// Node offsets of the four grid-adjacent neighbours.
var steps = [4]level.Cell{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// blockOf maps a node coordinate to its block coordinate.
func blockOf(n level.Cell) level.Cell {
	return level.Cell{X: 2*n.X + 1, Y: 2*n.Y + 1}
}

// Generate carves a perfect maze over a width x height node graph with a
// randomized iterative backtracker. The result is a (2*width+1) x
// (2*height+1) grid: every node and every wall between two connected nodes
// is Air, everything else is Dirt, and a uniformly chosen node holds the
// PlayerStart.
func Generate(rng *rand.Rand, width, height int) (level.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidMazeRequest, width, height)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	grid := level.NewGrid(2*width+1, 2*height+1, level.Dirt)

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}
	inBounds := func(n level.Cell) bool {
		return n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height
	}

	start := level.Cell{X: rng.Intn(width), Y: rng.Intn(height)}
	visited[start.Y][start.X] = true
	b := blockOf(start)
	grid.Set(b.X, b.Y, level.PlayerStart)

	stack := []level.Cell{start}
	candidates := make([]level.Cell, 0, len(steps))
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range steps {
			next := curr.Add(d.X, d.Y)
			if inBounds(next) && !visited[next.Y][next.X] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		visited[next.Y][next.X] = true

		nb := blockOf(next)
		cb := blockOf(curr)
		grid.Set(nb.X, nb.Y, level.Air)
		grid.Set((cb.X+nb.X)/2, (cb.Y+nb.Y)/2, level.Air)

		stack = append(stack, next)
	}

	return grid, nil
}
