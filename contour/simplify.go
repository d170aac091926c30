package contour

// BuildFlags enumerates the long-edge tessellation options passed to
// simplifyContour.
type BuildFlags int

const (
	// TessellateWallEdges permits long-edge splits on outer walls
	// (edges whose raw vertices carry no neighbor region).
	TessellateWallEdges BuildFlags = 0x01
	// TessellateAreaEdges permits long-edge splits on area boundaries.
	TessellateAreaEdges BuildFlags = 0x02
)

// simplifyContour reduces a raw ring into a polyline honoring maxError
// (perpendicular XZ distance, squared) and, if maxEdgeLen > 0 and
// buildFlags permits it, a maximum simplified-edge length. Raw vertices
// where the neighbor region or the area-border flag changes are always
// preserved.
func simplifyContour(raw []RawVertex, maxError float64, maxEdgeLen int, buildFlags BuildFlags) []SimplifiedVertex {
	n := len(raw)
	simplified := NewStack[SimplifiedVertex]()

	seedContour(raw, simplified)
	refineByError(raw, simplified, maxError)
	if maxEdgeLen > 0 && buildFlags&(TessellateWallEdges|TessellateAreaEdges) != 0 {
		tessellateLongEdges(raw, simplified, maxEdgeLen, buildFlags)
	}
	finalizeRegionBits(raw, simplified, n)

	return simplified.Slice()
}

// seedContour implements simplifier pass (a): mandatory break points at
// every portal/area-boundary transition, or (absent any portal) the two
// lexicographically extreme raw vertices.
func seedContour(raw []RawVertex, simplified *Stack[SimplifiedVertex]) {
	hasConnections := false
	for _, v := range raw {
		if v.Region&RegionMask != 0 {
			hasConnections = true
			break
		}
	}

	n := len(raw)
	if hasConnections {
		for i := 0; i < n; i++ {
			ii := next(i, n)
			differentRegs := (raw[i].Region & RegionMask) != (raw[ii].Region & RegionMask)
			areaBorders := (raw[i].Region & AreaBorder) != (raw[ii].Region & AreaBorder)
			if differentRegs || areaBorders {
				v := raw[i]
				simplified.Push(SimplifiedVertex{X: v.X, Y: v.Y, Z: v.Z, Data: i})
			}
		}
	}

	if simplified.Len() == 0 {
		lli, uri := 0, 0
		for i := 1; i < n; i++ {
			if raw[i].X < raw[lli].X || (raw[i].X == raw[lli].X && raw[i].Z < raw[lli].Z) {
				lli = i
			}
			if raw[i].X > raw[uri].X || (raw[i].X == raw[uri].X && raw[i].Z > raw[uri].Z) {
				uri = i
			}
		}
		simplified.Push(SimplifiedVertex{X: raw[lli].X, Y: raw[lli].Y, Z: raw[lli].Z, Data: lli})
		simplified.Push(SimplifiedVertex{X: raw[uri].X, Y: raw[uri].Y, Z: raw[uri].Z, Data: uri})
	}
}

// refineByError implements simplifier pass (b): repeatedly insert the
// raw vertex of greatest perpendicular deviation from its simplified
// edge, until every edge is within maxError. An edge whose first raw
// vertex is a portal to another region (and not an area border) is never
// refined.
func refineByError(raw []RawVertex, simplified *Stack[SimplifiedVertex], maxError float64) {
	pn := len(raw)
	for i := 0; i < simplified.Len(); {
		ii := next(i, simplified.Len())

		a := simplified.Index(i)
		b := simplified.Index(ii)
		ax, az, ai := a.X, a.Z, a.Data
		bx, bz, bi := b.X, b.Z, b.Data

		var ci, cinc, endi int
		// Traverse in lexicographic-forward order so the computed
		// deviation is identical regardless of which side of the edge
		// is walked first.
		if bx > ax || (bx == ax && bz > az) {
			cinc = 1
			ci = (ai + cinc) % pn
			endi = bi
		} else {
			cinc = pn - 1
			ci = (bi + cinc) % pn
			endi = ai
			ax, bx = bx, ax
			az, bz = bz, az
		}

		maxd := 0.0
		maxi := -1
		if (raw[ci].Region&RegionMask) == 0 || (raw[ci].Region&AreaBorder) != 0 {
			for ci != endi {
				d := distancePtSeg2D(raw[ci].X, raw[ci].Z, ax, az, bx, bz)
				if d > maxd {
					maxd = d
					maxi = ci
				}
				ci = (ci + cinc) % pn
			}
		}

		if maxi != -1 && maxd > maxError*maxError {
			v := raw[maxi]
			simplified.InsertAt(i+1, SimplifiedVertex{X: v.X, Y: v.Y, Z: v.Z, Data: maxi})
		} else {
			i++
		}
	}
}

// tessellateLongEdges implements simplifier pass (c): midpoint
// insertion on simplified edges longer than maxEdgeLen, restricted to
// wall/area edges per buildFlags.
func tessellateLongEdges(raw []RawVertex, simplified *Stack[SimplifiedVertex], maxEdgeLen int, buildFlags BuildFlags) {
	pn := len(raw)
	for i := 0; i < simplified.Len(); {
		ii := next(i, simplified.Len())

		a := simplified.Index(i)
		b := simplified.Index(ii)
		ax, az, ai := a.X, a.Z, a.Data
		bx, bz, bi := b.X, b.Z, b.Data

		ci := (ai + 1) % pn
		tess := false
		if buildFlags&TessellateWallEdges != 0 && (raw[ci].Region&RegionMask) == 0 {
			tess = true
		}
		if buildFlags&TessellateAreaEdges != 0 && (raw[ci].Region&AreaBorder) != 0 {
			tess = true
		}

		maxi := -1
		if tess {
			dx, dz := bx-ax, bz-az
			if dx*dx+dz*dz > maxEdgeLen*maxEdgeLen {
				n := bi - ai
				if bi < ai {
					n = bi + pn - ai
				}
				if n > 1 {
					if bx > ax || (bx == ax && bz > az) {
						maxi = (ai + n/2) % pn
					} else {
						maxi = (ai + (n+1)/2) % pn
					}
				}
			}
		}

		if maxi != -1 {
			v := raw[maxi]
			simplified.InsertAt(i+1, SimplifiedVertex{X: v.X, Y: v.Y, Z: v.Z, Data: maxi})
		} else {
			i++
		}
	}
}

// finalizeRegionBits implements simplifier pass (d): data is rewritten
// from "source raw index" to the packed region id, taking the neighbor
// region from the next raw vertex and the border-vertex flag from the
// current one.
func finalizeRegionBits(raw []RawVertex, simplified *Stack[SimplifiedVertex], pn int) {
	for i := 0; i < simplified.Len(); i++ {
		v := simplified.Index(i)
		bi := v.Data
		ai := (bi + 1) % pn
		packed := (raw[ai].Region & (RegionMask | AreaBorder)) | (raw[bi].Region & BorderVertex)
		v.Data = packed
		simplified.Set(i, v)
	}
}
