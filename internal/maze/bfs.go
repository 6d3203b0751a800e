package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/gridforge/puzzle-minigame-engine/internal/tiles"
)

// shortestPathLength returns the number of cells on a shortest route from
// from to to, counting both endpoints, or 0 when no route exists. Every
// non-wall cell is traversable.
func shortestPathLength(g *Grid, from, to Position) int {
	if g.CellAt(from) == CellWall || g.CellAt(to) == CellWall {
		return 0
	}

	type node struct {
		pos    Position
		length int
	}

	visited := mapset.New[Position]()
	visited.Put(from)
	queue := []node{{pos: from, length: 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos == to {
			return cur.length
		}

		for _, d := range tiles.AllDirections() {
			dRow, dCol := d.Delta()
			next := Position{Row: cur.pos.Row + dRow, Col: cur.pos.Col + dCol}
			if !g.InBounds(next) || visited.Has(next) || g.CellAt(next) == CellWall {
				continue
			}
			visited.Put(next)
			queue = append(queue, node{pos: next, length: cur.length + 1})
		}
	}

	return 0
}
