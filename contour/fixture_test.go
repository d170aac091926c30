package contour

import "github.com/krylov-na/SharpNav/heightfield"

// buildFlatHeightfield constructs a one-span-per-cell compact
// heightfield for tests: voxelization, erosion, and region labeling are
// out of scope for this package, so tests hand-assign region and area
// directly instead of deriving them from a real voxelizer.
func buildFlatHeightfield(width, height int, regionAt, areaAt func(x, y int) int) *heightfield.CompactHeightfield {
	n := width * height
	cells := make([]heightfield.Cell, n)
	spans := make([]heightfield.Span, n)
	areas := make([]int, n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := x + y*width
			cells[idx] = heightfield.Cell{Index: idx, Count: 1}
			spans[idx] = heightfield.NewSpan(0, regionAt(x, y), 1)
			areas[idx] = areaAt(x, y)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := x + y*width
			for dir := 0; dir < 4; dir++ {
				nx := x + heightfield.GetDirOffsetX(dir)
				ny := y + heightfield.GetDirOffsetY(dir)
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				// One span per column, so the connection offset into
				// the neighbor's span run is always 0.
				spans[idx].SetConnection(dir, 0)
			}
		}
	}

	return &heightfield.CompactHeightfield{
		Width:      width,
		Height:     height,
		SpanCount:  n,
		MaxRegions: n,
		CellSize:   1,
		CellHeight: 1,
		Cells:      cells,
		Spans:      spans,
		Areas:      areas,
	}
}
