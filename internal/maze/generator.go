package maze

import "math/rand"

const (
	maxGenerationAttempts = 50
	maxPlacementTries     = 100
)

// Generate builds a solvable maze for the given difficulty tier. It scatters
// walls at the tier's density, places start/key/exit on distinct open cells,
// and keeps the layout only when breadth-first search confirms both legs
// (start→key, key→exit). After maxGenerationAttempts failed layouts it
// abandons randomness and returns the trivial maze, so the result is always
// solvable.
func Generate(rng *rand.Rand, difficulty Difficulty) Grid {
	cfg := ConfigFor(difficulty)

	for i := 0; i < maxGenerationAttempts; i++ {
		g := randomLayout(rng, cfg)
		toKey := shortestPathLength(&g, g.Start, g.Key)
		toExit := shortestPathLength(&g, g.Key, g.Exit)
		if toKey > 0 && toExit > 0 {
			g.OptimalPathLength = toKey + toExit
			return g
		}
	}

	return trivialMaze(cfg)
}

func randomLayout(rng *rand.Rand, cfg Config) Grid {
	size := cfg.GridSize
	cells := make([][]Cell, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			cells[row][col] = CellEmpty
		}
	}

	// Each wall draw targets one random cell; a draw that lands on an
	// existing wall is skipped, so the realized count can run slightly
	// under target.
	wallCount := int(float64(size*size) * cfg.WallDensity)
	for i := 0; i < wallCount; i++ {
		row, col := rng.Intn(size), rng.Intn(size)
		if cells[row][col] == CellEmpty {
			cells[row][col] = CellWall
		}
	}

	g := Grid{Cells: cells, Size: size}
	g.Start = Position{Row: size / 2, Col: 0}
	g.Key = randomEmptyCell(rng, &g, g.Start)
	g.Exit = randomEmptyCell(rng, &g, g.Start, g.Key)

	// Placement already excludes walls; writing the tags asserts the three
	// cells are distinct and open.
	g.Cells[g.Start.Row][g.Start.Col] = CellStart
	g.Cells[g.Key.Row][g.Key.Col] = CellKey
	g.Cells[g.Exit.Row][g.Exit.Col] = CellExit
	return g
}

// randomEmptyCell picks a uniformly random empty cell outside the excluded
// positions. Random sampling is capped at maxPlacementTries, after which a
// row-major scan finds the first acceptable cell; if even that fails the
// degenerate fallback is (0,0).
func randomEmptyCell(rng *rand.Rand, g *Grid, exclude ...Position) Position {
	ok := func(pos Position) bool {
		if g.CellAt(pos) != CellEmpty {
			return false
		}
		for _, ex := range exclude {
			if pos == ex {
				return false
			}
		}
		return true
	}

	for i := 0; i < maxPlacementTries; i++ {
		pos := Position{Row: rng.Intn(g.Size), Col: rng.Intn(g.Size)}
		if ok(pos) {
			return pos
		}
	}
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			pos := Position{Row: row, Col: col}
			if ok(pos) {
				return pos
			}
		}
	}
	return Position{Row: 0, Col: 0}
}

// trivialMaze is the deterministic last resort: no walls, start/key/exit in
// a straight line along the middle row.
func trivialMaze(cfg Config) Grid {
	size := cfg.GridSize
	cells := make([][]Cell, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			cells[row][col] = CellEmpty
		}
	}

	mid := size / 2
	g := Grid{
		Cells:             cells,
		Size:              size,
		Start:             Position{Row: mid, Col: 0},
		Key:               Position{Row: mid, Col: size / 2},
		Exit:              Position{Row: mid, Col: size - 1},
		OptimalPathLength: size,
	}
	g.Cells[g.Start.Row][g.Start.Col] = CellStart
	g.Cells[g.Key.Row][g.Key.Col] = CellKey
	g.Cells[g.Exit.Row][g.Exit.Col] = CellExit
	return g
}
