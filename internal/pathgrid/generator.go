package pathgrid

import (
	"math/rand"

	"github.com/gridforge/puzzle-minigame-engine/internal/tiles"
)

var rotations = []int{0, 90, 180, 270}

// Generate builds a size×size grid of independently drawn random tiles.
// Higher level numbers unlock harder tile shapes, capped at tier 3. Start
// and end sit at the horizontal extremes of the middle row; they receive a
// random pattern like every other cell since traversal never demands a
// particular orientation of them.
func Generate(rng *rand.Rand, size, levelNumber int) GridConfig {
	maxDifficulty := levelNumber
	if maxDifficulty > 3 {
		maxDifficulty = 3
	}
	if maxDifficulty < 1 {
		maxDifficulty = 1
	}

	grid := make([][]GridTile, size)
	for row := 0; row < size; row++ {
		grid[row] = make([]GridTile, size)
		for col := 0; col < size; col++ {
			pattern := tiles.RandomPattern(rng, maxDifficulty)
			grid[row][col] = GridTile{
				Row:      row,
				Col:      col,
				Pattern:  &pattern,
				Rotation: rotations[rng.Intn(len(rotations))],
			}
		}
	}

	config := GridConfig{
		Tiles:        grid,
		Size:         size,
		Start:        Position{Row: size / 2, Col: 0},
		End:          Position{Row: size / 2, Col: size - 1},
		OptimalMoves: optimalMoves(size, levelNumber),
	}

	// Start and end keep their random pattern but are turned until an exit
	// faces the board interior. They stay fixed for the rest of the round,
	// so this is the only chance to orient them.
	faceInterior(config.TileAt(config.Start), tiles.Right)
	faceInterior(config.TileAt(config.End), tiles.Left)
	return config
}

// faceInterior turns tile clockwise until one of its exits points in dir.
// Every pattern reaches any direction within three turns.
func faceInterior(tile *GridTile, dir tiles.Direction) {
	for i := 0; i < 4; i++ {
		for _, exit := range tile.ExitsAt() {
			if exit == dir {
				return
			}
		}
		tile.Rotation = tiles.NormalizeRotation(tile.Rotation + 90)
	}
}

// optimalMoves is a heuristic move budget used only for score comparison.
// It is not a solvability guarantee; the player makes the grid solvable by
// rotating tiles.
func optimalMoves(size, levelNumber int) int {
	return int(float64(size-1) * 1.5 * (1 + float64(levelNumber)*0.1))
}
