package contour

import "github.com/krylov-na/SharpNav/heightfield"

// markInternalEdge flags direction dir of mask as facing a neighbor in
// the same region.
func markInternalEdge(mask, dir int) int {
	return mask | (1 << uint(dir))
}

// hasInternalEdge reports whether direction dir of mask faces a same-
// region neighbor.
func hasInternalEdge(mask, dir int) bool {
	return mask&(1<<uint(dir)) != 0
}

// flipAllBits inverts the low 4 bits of mask, turning "faces same
// region" into "faces a boundary" and back.
func flipAllBits(mask int) int {
	return mask ^ 0xf
}

// buildEdgeFlags computes, for every span in chf, a 4-bit mask whose bit
// d is set exactly when the edge in direction d crosses a region
// boundary. Spans with a null or border region get flags 0 and are never
// visited by the walker.
func buildEdgeFlags(chf *heightfield.CompactHeightfield) []int {
	flags := make([]int, chf.SpanCount)
	for y := 0; y < chf.Height; y++ {
		for x := 0; x < chf.Width; x++ {
			cell := chf.CellAt(x, y)
			for i := cell.Index; i < cell.Index+cell.Count; i++ {
				span := chf.Spans[i]
				if heightfield.IsBorderOrNull(span.Region) {
					flags[i] = 0
					continue
				}
				internal := 0
				for dir := 0; dir < 4; dir++ {
					neighborRegion := 0
					if span.GetConnection(dir) != heightfield.NotConnected {
						ax := x + heightfield.GetDirOffsetX(dir)
						ay := y + heightfield.GetDirOffsetY(dir)
						ai := chf.CellAt(ax, ay).Index + span.GetConnection(dir)
						neighborRegion = chf.Spans[ai].Region
					}
					if neighborRegion == span.Region {
						internal = markInternalEdge(internal, dir)
					}
				}
				flags[i] = flipAllBits(internal)
			}
		}
	}
	return flags
}
