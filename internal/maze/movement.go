package maze

import "github.com/gridforge/puzzle-minigame-engine/internal/tiles"

// MoveCheck is the advisory answer to "may the token step this way?".
// NewPosition is nil whenever the move is rejected. The caller owns the
// actual token state and its wall-hit policy.
type MoveCheck struct {
	CanMove     bool      `json:"canMove"`
	NewPosition *Position `json:"newPosition"`
	HitWall     bool      `json:"hitWall"`
}

// CanMove checks a single step from pos in direction dir against grid
// bounds and walls. Leaving the board and walking into a wall both report
// HitWall.
func CanMove(pos Position, dir tiles.Direction, g *Grid) MoveCheck {
	dRow, dCol := dir.Delta()
	next := Position{Row: pos.Row + dRow, Col: pos.Col + dCol}

	if !g.InBounds(next) || g.CellAt(next) == CellWall {
		return MoveCheck{CanMove: false, NewPosition: nil, HitWall: true}
	}
	return MoveCheck{CanMove: true, NewPosition: &next, HitWall: false}
}
