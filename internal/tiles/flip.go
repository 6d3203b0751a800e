package tiles

// flipTransforms maps each shape to the rotation it lands on when mirrored.
// The rules differ per shape because each has a different number of
// rotational symmetries:
//   - a straight always jumps to the other member of its 2-element
//     orientation class (0↔90, 180↔270 collapse to the same two looks),
//   - a corner mirrors 90↔270 while 0 and 180 are their own mirror images,
//   - a tee and a cross mirror to their 180° rotation.
var flipTransforms = map[Shape]func(int) int{
	ShapeStraight: func(r int) int {
		if r%180 == 0 {
			return NormalizeRotation(r + 90)
		}
		return NormalizeRotation(r + 270)
	},
	ShapeCorner: func(r int) int {
		switch r {
		case 90:
			return 270
		case 270:
			return 90
		}
		return r
	},
	ShapeTJunction: func(r int) int { return NormalizeRotation(r + 180) },
	ShapeCross:     func(r int) int { return NormalizeRotation(r + 180) },
}

// FlipRotation returns the rotation a tile of the given shape ends up at
// when flipped (mirrored) from rotation. Flip is an involution for every
// shape.
func FlipRotation(shape Shape, rotation int) int {
	transform, ok := flipTransforms[shape]
	if !ok {
		return NormalizeRotation(rotation)
	}
	return transform(NormalizeRotation(rotation))
}
