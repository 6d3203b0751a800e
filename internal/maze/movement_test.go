package maze

import (
	"encoding/json"
	"testing"

	"github.com/gridforge/puzzle-minigame-engine/internal/tiles"
)

func openGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			cells[row][col] = CellEmpty
		}
	}
	return &Grid{Cells: cells, Size: size}
}

func TestCanMoveOutOfBounds(t *testing.T) {
	g := openGrid(5)
	for _, dir := range []tiles.Direction{tiles.Up, tiles.Left} {
		check := CanMove(Position{Row: 0, Col: 0}, dir, g)
		if check.CanMove || !check.HitWall || check.NewPosition != nil {
			t.Errorf("moving %s off (0,0): %+v", dir, check)
		}
	}
	check := CanMove(Position{Row: 4, Col: 4}, tiles.Down, g)
	if check.CanMove || !check.HitWall {
		t.Errorf("moving down off (4,4): %+v", check)
	}
}

func TestCanMoveIntoWall(t *testing.T) {
	g := openGrid(5)
	g.Cells[2][3] = CellWall
	check := CanMove(Position{Row: 2, Col: 2}, tiles.Right, g)
	if check.CanMove || !check.HitWall || check.NewPosition != nil {
		t.Errorf("moving into wall: %+v", check)
	}
}

func TestCanMoveOpenCells(t *testing.T) {
	g := openGrid(5)
	g.Cells[2][3] = CellKey
	g.Cells[1][2] = CellExit

	tests := []struct {
		dir  tiles.Direction
		want Position
	}{
		{tiles.Right, Position{Row: 2, Col: 3}}, // key cells are walkable
		{tiles.Up, Position{Row: 1, Col: 2}},    // exit cells are walkable
		{tiles.Down, Position{Row: 3, Col: 2}},
		{tiles.Left, Position{Row: 2, Col: 1}},
	}
	for _, tc := range tests {
		check := CanMove(Position{Row: 2, Col: 2}, tc.dir, g)
		if !check.CanMove || check.HitWall {
			t.Errorf("moving %s rejected: %+v", tc.dir, check)
			continue
		}
		if *check.NewPosition != tc.want {
			t.Errorf("moving %s landed at %+v, want %+v", tc.dir, *check.NewPosition, tc.want)
		}
	}
}

func roundTripMaze(t *testing.T, g Grid) Grid {
	t.Helper()
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Grid
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return restored
}
