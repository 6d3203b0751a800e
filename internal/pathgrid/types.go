package pathgrid

import "github.com/gridforge/puzzle-minigame-engine/internal/tiles"

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GridTile is one live cell: a shared read-only pattern plus the cell's own
// rotation. Display concerns (selection, path highlight) live with the
// caller, not here.
type GridTile struct {
	Row      int                `json:"row"`
	Col      int                `json:"col"`
	Pattern  *tiles.TilePattern `json:"pattern"`
	Rotation int                `json:"rotation"`
}

// GridConfig is a whole path-finder puzzle instance. Tiles is row-major.
// The struct is plain data and round-trips through JSON unchanged.
type GridConfig struct {
	Tiles        [][]GridTile `json:"tiles"`
	Size         int          `json:"size"`
	Start        Position     `json:"start"`
	End          Position     `json:"end"`
	OptimalMoves int          `json:"optimalMoves"`
}

// TileAt returns the tile at pos, or nil when pos is out of bounds.
func (g *GridConfig) TileAt(pos Position) *GridTile {
	if !g.InBounds(pos) {
		return nil
	}
	return &g.Tiles[pos.Row][pos.Col]
}

// InBounds reports whether pos lies on the grid.
func (g *GridConfig) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// ExitsAt returns the tile's exit directions with its rotation applied.
func (t *GridTile) ExitsAt() []tiles.Direction {
	return tiles.RotateExits(t.Pattern.Exits, t.Rotation)
}

// RotateTile returns a copy of t advanced 90° clockwise. The caller writes
// the result back into the grid.
func RotateTile(t GridTile) GridTile {
	t.Rotation = tiles.NormalizeRotation(t.Rotation + 90)
	return t
}

// FlipTile returns a copy of t mirrored according to its shape's flip rule.
// The caller writes the result back into the grid.
func FlipTile(t GridTile) GridTile {
	t.Rotation = tiles.FlipRotation(t.Pattern.Shape, t.Rotation)
	return t
}
