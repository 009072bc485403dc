package decoder

import (
	"math"
	"testing"
)

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSolveTransformRecoversAffineCoefficients(t *testing.T) {
	// x = 2X + 3Y + 5, y = 4X + Y + 7 (no perspective term: g=h=0).
	corners := [4]corner{
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
		{gridX: 1, gridY: 0, imageX: 7, imageY: 11},
		{gridX: 0, gridY: 1, imageX: 8, imageY: 8},
		{gridX: 1, gridY: 1, imageX: 10, imageY: 12},
	}

	tr, err := solveTransform(corners)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Transform{A: 2, B: 3, C: 5, D: 4, E: 1, F: 7, G: 0, H: 0}
	got := *tr
	if !closeEnough(got.A, want.A) || !closeEnough(got.B, want.B) || !closeEnough(got.C, want.C) ||
		!closeEnough(got.D, want.D) || !closeEnough(got.E, want.E) || !closeEnough(got.F, want.F) ||
		!closeEnough(got.G, want.G) || !closeEnough(got.H, want.H) {
		t.Errorf("transform = %+v, want %+v", got, want)
	}
}

func TestTransformApplyRoundTripsCorners(t *testing.T) {
	corners := [4]corner{
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
		{gridX: 1, gridY: 0, imageX: 7, imageY: 11},
		{gridX: 0, gridY: 1, imageX: 8, imageY: 8},
		{gridX: 1, gridY: 1, imageX: 10, imageY: 12},
	}
	tr, err := solveTransform(corners)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range corners {
		x, y := tr.Apply(c.gridX, c.gridY)
		if !closeEnough(x, c.imageX) || !closeEnough(y, c.imageY) {
			t.Errorf("Apply(%v,%v) = (%v,%v), want (%v,%v)", c.gridX, c.gridY, x, y, c.imageX, c.imageY)
		}
	}
}

func TestSolveTransformSingular(t *testing.T) {
	// All four correspondences collapse onto the same grid point: the
	// system has no unique solution.
	corners := [4]corner{
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
		{gridX: 0, gridY: 0, imageX: 5, imageY: 7},
	}
	if _, err := solveTransform(corners); err != ErrTransformSingular {
		t.Errorf("err = %v, want ErrTransformSingular", err)
	}
}
