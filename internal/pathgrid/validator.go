package pathgrid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/gridforge/puzzle-minigame-engine/internal/tiles"
)

// ValidationResult reports whether a traversable route currently exists and,
// when it does, the cells along one shortest such route.
type ValidationResult struct {
	IsValid bool       `json:"isValid"`
	Path    []Position `json:"path"`
	Message string     `json:"message"`
}

const (
	msgPathFound   = "Path complete! The circuit connects start to end."
	msgPathMissing = "No complete path yet. Keep rotating tiles."
)

type searchNode struct {
	pos  Position
	path []Position
}

// Validate runs a breadth-first search from the grid's start cell using the
// tiles' rotated exits. A step to a neighbor counts only when both sides
// agree: the current tile has an exit facing the neighbor and the neighbor
// has an exit facing back. The search succeeds the moment the end cell is
// dequeued; the end tile is never required to have onward exits.
func Validate(grid *GridConfig) ValidationResult {
	visited := mapset.New[Position]()
	visited.Put(grid.Start)

	queue := []searchNode{{pos: grid.Start, path: []Position{grid.Start}}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.pos == grid.End {
			return ValidationResult{IsValid: true, Path: node.path, Message: msgPathFound}
		}

		tile := grid.TileAt(node.pos)
		for _, exit := range tile.ExitsAt() {
			dRow, dCol := exit.Delta()
			next := Position{Row: node.pos.Row + dRow, Col: node.pos.Col + dCol}
			if !grid.InBounds(next) || visited.Has(next) {
				continue
			}
			if !connectsBack(grid.TileAt(next), exit) {
				continue
			}
			visited.Put(next)
			path := make([]Position, len(node.path), len(node.path)+1)
			copy(path, node.path)
			queue = append(queue, searchNode{pos: next, path: append(path, next)})
		}
	}

	return ValidationResult{IsValid: false, Path: nil, Message: msgPathMissing}
}

// connectsBack reports whether the neighbor reached by moving in dir has a
// rotated exit facing back toward the tile the move came from.
func connectsBack(neighbor *GridTile, dir tiles.Direction) bool {
	want := dir.Opposite()
	for _, exit := range neighbor.ExitsAt() {
		if exit == want {
			return true
		}
	}
	return false
}
