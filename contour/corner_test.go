package contour

import "testing"

func TestCornerHeightFlatRegionIsNeverBorderVertex(t *testing.T) {
	chf := buildFlatHeightfield(3, 3, func(x, y int) int { return 1 }, func(x, y int) int { return 0 })
	h, isBorder := cornerHeight(chf, 1, 1, 1+1*3, 0)
	assertTrue(t, h == 0, "a flat region with all spans at minimum 0 resolves every corner to height 0")
	assertTrue(t, !isBorder, "a single uniform region never produces a border-vertex corner")
}

func TestCornerHeightUsesMaxOfCoincidentSpans(t *testing.T) {
	chf := buildFlatHeightfield(2, 2, func(x, y int) int { return 1 }, func(x, y int) int { return 0 })
	chf.Spans[0].Minimum = 0 // (0,0)
	chf.Spans[1].Minimum = 5 // (1,0)
	h, _ := cornerHeight(chf, 0, 0, 0, 2) // dir 2 = +X, corner shared with span (1,0)
	assertTrue(t, h == 5, "the corner resolver must take the max minimum across coincident spans")
}
