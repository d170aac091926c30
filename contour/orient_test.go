package contour

import "testing"

func TestCalcAreaOfPolygon2DSign(t *testing.T) {
	outer := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 0, Z: 4},
		{X: 4, Z: 4},
		{X: 4, Z: 0},
	}
	assertTrue(t, calcAreaOfPolygon2D(outer) > 0, "this winding order must report a positive (outer) area")

	hole := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 4, Z: 0},
		{X: 4, Z: 4},
		{X: 0, Z: 4},
	}
	assertTrue(t, calcAreaOfPolygon2D(hole) < 0, "the reverse winding order must report a negative (hole) area")
}

func TestSpliceLength(t *testing.T) {
	a := []SimplifiedVertex{{X: 0}, {X: 1}, {X: 2}}
	b := []SimplifiedVertex{{X: 10}, {X: 11}}
	out := splice(a, b, 1, 0)
	assertTrue(t, len(out) == len(a)+len(b)+2, "splice must produce |a|+|b|+2 vertices")
	assertTrue(t, out[0] == a[1], "splice must start at a's pivot")
	assertTrue(t, out[len(a)] == a[1], "a's pivot must be doubled")
}

func TestClosestIndicesFindsConeRestrictedPair(t *testing.T) {
	outer := []SimplifiedVertex{
		{X: 0, Z: 0},
		{X: 0, Z: 10},
		{X: 10, Z: 10},
		{X: 10, Z: 0},
	}
	hole := []SimplifiedVertex{
		{X: 4, Z: 4},
		{X: 6, Z: 4},
		{X: 6, Z: 6},
		{X: 4, Z: 6},
	}
	ia, ib, ok := closestIndices(outer, hole)
	assertTrue(t, ok, "a hole fully inside its outline must find a visible pair")
	_ = ia
	_ = ib
}

func TestClosestIndicesDegenerateRingsDoNotPanic(t *testing.T) {
	a := []SimplifiedVertex{{X: 0, Z: 0}, {X: 0, Z: 0}}
	b := []SimplifiedVertex{{X: 0, Z: 0}, {X: 0, Z: 0}}
	_, _, ok := closestIndices(a, b)
	// Coincident points satisfy both leftOn tests with equality, so a
	// trivial pair is found here; the check is only that zero-length
	// rings do not panic.
	_ = ok
}
