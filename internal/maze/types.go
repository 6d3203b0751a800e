package maze

// Cell tags one maze square.
type Cell string

const (
	CellEmpty Cell = "empty"
	CellWall  Cell = "wall"
	CellStart Cell = "start"
	CellKey   Cell = "key"
	CellExit  Cell = "exit"
)

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Difficulty selects a generation tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Config is one generation tier: board size, fraction of cells walled off,
// the round's time limit in seconds, and the multiplier the caller uses to
// turn the optimal path length into a move budget.
type Config struct {
	GridSize        int     `json:"gridSize"`
	WallDensity     float64 `json:"wallDensity"`
	TimeLimit       int     `json:"timeLimit"`
	MovesMultiplier float64 `json:"movesMultiplier"`
}

var difficultyTable = map[Difficulty]Config{
	DifficultyEasy:   {GridSize: 8, WallDensity: 0.20, TimeLimit: 240, MovesMultiplier: 1.5},
	DifficultyMedium: {GridSize: 10, WallDensity: 0.25, TimeLimit: 300, MovesMultiplier: 2.0},
	DifficultyHard:   {GridSize: 12, WallDensity: 0.30, TimeLimit: 360, MovesMultiplier: 2.5},
}

// ConfigFor returns the tier configuration for d, defaulting to medium for
// unknown values.
func ConfigFor(d Difficulty) Config {
	if cfg, ok := difficultyTable[d]; ok {
		return cfg
	}
	return difficultyTable[DifficultyMedium]
}

// Grid is one key-finder maze instance: cell tags in row-major order plus
// the three special positions and the generator's measured optimal path
// length (start→key plus key→exit, counted in cells visited including
// endpoints). Plain data; round-trips through JSON unchanged.
type Grid struct {
	Cells             [][]Cell `json:"cells"`
	Size              int      `json:"size"`
	Start             Position `json:"start"`
	Key               Position `json:"key"`
	Exit              Position `json:"exit"`
	OptimalPathLength int      `json:"optimalPathLength"`
}

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// CellAt returns the tag at pos; out-of-bounds positions read as walls.
func (g *Grid) CellAt(pos Position) Cell {
	if !g.InBounds(pos) {
		return CellWall
	}
	return g.Cells[pos.Row][pos.Col]
}
