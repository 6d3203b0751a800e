package tiles

import "math/rand"

// Shape is the rotational-symmetry category of a tile pattern.
type Shape string

const (
	ShapeStraight  Shape = "straight"
	ShapeCorner    Shape = "corner"
	ShapeTJunction Shape = "t_junction"
	ShapeCross     Shape = "cross"
)

// TilePattern is a catalog entry: a tile's exits at zero rotation plus the
// difficulty tier it is drawn at. Entries are static and never mutated.
type TilePattern struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Shape      Shape       `json:"shape"`
	Exits      []Direction `json:"exits"`
	Difficulty int         `json:"difficulty"`
	Active     bool        `json:"active"`
}

var catalog = []TilePattern{
	{ID: "straight-h", Name: "Horizontal Straight", Shape: ShapeStraight, Exits: []Direction{Left, Right}, Difficulty: 1, Active: true},
	{ID: "straight-v", Name: "Vertical Straight", Shape: ShapeStraight, Exits: []Direction{Up, Down}, Difficulty: 1, Active: true},
	{ID: "corner-ne", Name: "Corner North-East", Shape: ShapeCorner, Exits: []Direction{Up, Right}, Difficulty: 1, Active: true},
	{ID: "corner-se", Name: "Corner South-East", Shape: ShapeCorner, Exits: []Direction{Down, Right}, Difficulty: 1, Active: true},
	{ID: "corner-sw", Name: "Corner South-West", Shape: ShapeCorner, Exits: []Direction{Down, Left}, Difficulty: 1, Active: true},
	{ID: "corner-nw", Name: "Corner North-West", Shape: ShapeCorner, Exits: []Direction{Up, Left}, Difficulty: 1, Active: true},
	{ID: "tee-n", Name: "Tee North", Shape: ShapeTJunction, Exits: []Direction{Left, Up, Right}, Difficulty: 2, Active: true},
	{ID: "tee-e", Name: "Tee East", Shape: ShapeTJunction, Exits: []Direction{Up, Right, Down}, Difficulty: 2, Active: true},
	{ID: "tee-s", Name: "Tee South", Shape: ShapeTJunction, Exits: []Direction{Left, Down, Right}, Difficulty: 2, Active: true},
	{ID: "tee-w", Name: "Tee West", Shape: ShapeTJunction, Exits: []Direction{Up, Left, Down}, Difficulty: 2, Active: true},
	{ID: "cross", Name: "Crossroads", Shape: ShapeCross, Exits: []Direction{Up, Down, Left, Right}, Difficulty: 3, Active: true},
}

// AllPatterns returns the full catalog. Callers must not mutate entries.
func AllPatterns() []TilePattern {
	return catalog
}

// PatternsUpTo returns the active patterns whose difficulty tier is at most
// maxDifficulty, inclusive.
func PatternsUpTo(maxDifficulty int) []TilePattern {
	var filtered []TilePattern
	for _, p := range catalog {
		if p.Active && p.Difficulty <= maxDifficulty {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PatternByID looks a pattern up by its catalog id.
func PatternByID(id string) (TilePattern, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return TilePattern{}, false
}

// RandomPattern draws uniformly from the difficulty-filtered subset of the
// catalog. Every call is an independent draw.
func RandomPattern(rng *rand.Rand, maxDifficulty int) TilePattern {
	pool := PatternsUpTo(maxDifficulty)
	if len(pool) == 0 {
		pool = PatternsUpTo(1)
	}
	return pool[rng.Intn(len(pool))]
}
