package tiles

// Direction is one side of a tile through which a path can connect.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// AllDirections returns the four cardinal directions for iteration.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the row/col offset of a single step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// rotateStep maps a direction to where it points after a single 90°
// clockwise turn: up→right→down→left→up.
func rotateStep(d Direction) Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}
	return d
}

// rotationTable[d][r/90] gives the direction d occupies after a clockwise
// rotation of r degrees. Built once from rotateStep so the fast lookup can
// never drift from the single-step definition.
var rotationTable = buildRotationTable()

func buildRotationTable() map[Direction][4]Direction {
	table := make(map[Direction][4]Direction, 4)
	for _, d := range AllDirections() {
		var row [4]Direction
		cur := d
		for step := 0; step < 4; step++ {
			row[step] = cur
			cur = rotateStep(cur)
		}
		table[d] = row
	}
	return table
}

// NormalizeRotation reduces any rotation to {0, 90, 180, 270}.
func NormalizeRotation(rotation int) int {
	r := rotation % 360
	if r < 0 {
		r += 360
	}
	return r - r%90
}

// RotateExits returns the directions a tile's canonical exits occupy after
// the tile is rotated clockwise by rotation degrees.
func RotateExits(exits []Direction, rotation int) []Direction {
	steps := NormalizeRotation(rotation) / 90
	rotated := make([]Direction, len(exits))
	for i, d := range exits {
		rotated[i] = rotationTable[d][steps]
	}
	return rotated
}
