package maze

import "github.com/automoto/heaven-and-hell/level"

// walkable reports whether the player can stand in a cell.
func walkable(b level.Block) bool {
	return !b.Collidable() || b == level.PlayerEnd
}

// Distances runs a breadth-first search over the walkable cells of grid and
// returns the step count from the given cell to every reachable cell.
func Distances(grid level.Grid, from level.Cell) map[level.Cell]int {
	dist := map[level.Cell]int{}
	if !grid.InBounds(from.X, from.Y) || !walkable(grid.At(from.X, from.Y)) {
		return dist
	}

	dist[from] = 0
	queue := []level.Cell{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range steps {
			next := curr.Add(d.X, d.Y)
			if !grid.InBounds(next.X, next.Y) || !walkable(grid.At(next.X, next.Y)) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[curr] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// PlaceExit writes a PlayerEnd on the node cell farthest from the
// PlayerStart, scanning in row-major order so ties resolve the same way every
// time. Node cells sit at odd coordinates.
func PlaceExit(grid level.Grid) (level.Cell, error) {
	start, err := grid.Start()
	if err != nil {
		return level.Cell{}, err
	}
	if _, err := grid.Exit(); err == nil {
		return level.Cell{}, level.ErrMultiplePlayerEnds
	}

	dist := Distances(grid, start)
	best, bestDist := level.Cell{}, 0
	for y := 1; y < grid.Height(); y += 2 {
		for x := 1; x < grid.Width(); x += 2 {
			c := level.Cell{X: x, Y: y}
			if d, ok := dist[c]; ok && d > bestDist {
				best, bestDist = c, d
			}
		}
	}
	if bestDist == 0 {
		return level.Cell{}, ErrNoExitCandidate
	}

	grid.Set(best.X, best.Y, level.PlayerEnd)
	return best, nil
}
