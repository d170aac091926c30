package contour

import "github.com/krylov-na/SharpNav/heightfield"

// maxWalkIterations caps the contour walk so malformed input (a ring
// that never revisits its start state) can't hang the build.
const maxWalkIterations = 40000

// walkContour traces one closed ring of raw vertices around the region
// owning span i at cell (x,y), consuming boundary edges from flags as it
// goes (clearing each bit exactly once) via a right-hand wall-follow.
func walkContour(chf *heightfield.CompactHeightfield, flags []int, x, y, i int) []RawVertex {
	dir := 0
	for flags[i]&(1<<uint(dir)) == 0 {
		dir++
	}

	startI, startDir := i, dir
	area := chf.Areas[i]

	var verts []RawVertex
	for iter := 0; iter < maxWalkIterations; iter++ {
		if flags[i]&(1<<uint(dir)) != 0 {
			py, isBorderVertex := cornerHeight(chf, x, y, i, dir)
			px, pz := x, y
			switch dir {
			case 0:
				pz++
			case 1:
				px++
				pz++
			case 2:
				px++
			}

			region := 0
			span := chf.Spans[i]
			if span.GetConnection(dir) != heightfield.NotConnected {
				ax := x + heightfield.GetDirOffsetX(dir)
				ay := y + heightfield.GetDirOffsetY(dir)
				ai := chf.CellAt(ax, ay).Index + span.GetConnection(dir)
				region = chf.Spans[ai].Region
				if area != chf.Areas[ai] {
					region |= AreaBorder
				}
			}
			if isBorderVertex {
				region |= BorderVertex
			}

			verts = append(verts, RawVertex{X: px, Y: py, Z: pz, Region: region})

			flags[i] &^= 1 << uint(dir)
			dir = (dir + 1) & 0x3
		} else {
			nx := x + heightfield.GetDirOffsetX(dir)
			ny := y + heightfield.GetDirOffsetY(dir)
			span := chf.Spans[i]
			if span.GetConnection(dir) == heightfield.NotConnected {
				// Movement was required but the edge isn't connected:
				// the input is malformed. Abort this ring and return the
				// vertices gathered so far; the driver keeps it only if it
				// still simplifies to 3 or more vertices.
				return verts
			}
			ni := chf.CellAt(nx, ny).Index + span.GetConnection(dir)
			x, y, i = nx, ny, ni
			dir = (dir + 3) & 0x3
		}

		if i == startI && dir == startDir {
			break
		}
	}

	return verts
}
