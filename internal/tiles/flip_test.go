package tiles

import "testing"

func TestFlipRotationStraight(t *testing.T) {
	tests := []struct {
		rotation, want int
	}{
		{0, 90},
		{90, 0},
		{180, 270},
		{270, 180},
	}
	for _, tc := range tests {
		if got := FlipRotation(ShapeStraight, tc.rotation); got != tc.want {
			t.Errorf("straight flip at %d = %d, want %d", tc.rotation, got, tc.want)
		}
	}
}

func TestFlipRotationCorner(t *testing.T) {
	tests := []struct {
		rotation, want int
	}{
		{0, 0},
		{90, 270},
		{180, 180},
		{270, 90},
	}
	for _, tc := range tests {
		if got := FlipRotation(ShapeCorner, tc.rotation); got != tc.want {
			t.Errorf("corner flip at %d = %d, want %d", tc.rotation, got, tc.want)
		}
	}
}

func TestFlipRotationTeeAndCross(t *testing.T) {
	for _, shape := range []Shape{ShapeTJunction, ShapeCross} {
		tests := []struct {
			rotation, want int
		}{
			{0, 180},
			{90, 270},
			{180, 0},
			{270, 90},
		}
		for _, tc := range tests {
			if got := FlipRotation(shape, tc.rotation); got != tc.want {
				t.Errorf("%s flip at %d = %d, want %d", shape, tc.rotation, got, tc.want)
			}
		}
	}
}

func TestFlipIsInvolution(t *testing.T) {
	shapes := []Shape{ShapeStraight, ShapeCorner, ShapeTJunction, ShapeCross}
	for _, shape := range shapes {
		for _, rotation := range []int{0, 90, 180, 270} {
			once := FlipRotation(shape, rotation)
			twice := FlipRotation(shape, once)
			if twice != rotation {
				t.Errorf("%s: flip(flip(%d)) = %d", shape, rotation, twice)
			}
		}
	}
}
