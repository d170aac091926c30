package contour

// Geometry predicates operate in the XZ plane on integer voxel
// coordinates, matching the teacher's int-coordinate contour helpers
// (recast_contour.go, common/mesh_utils.go) rather than the float vector
// helpers reserved for the out-of-scope geometry collaborator.

// area2 returns twice the signed area of triangle (a,b,c) in XZ.
func area2(ax, az, bx, bz, cx, cz int) int {
	return (bx-ax)*(cz-az) - (cx-ax)*(bz-az)
}

// leftOn reports whether c lies left of or on the directed line a->b.
func leftOn(ax, az, bx, bz, cx, cz int) bool {
	return area2(ax, az, bx, bz, cx, cz) <= 0
}

// distancePtSeg2D returns the squared XZ distance from (x,z) to the
// segment (px,pz)-(qx,qz), clamping the projection to the segment.
func distancePtSeg2D(x, z, px, pz, qx, qz int) float64 {
	pqx := float64(qx - px)
	pqz := float64(qz - pz)
	dx := float64(x - px)
	dz := float64(z - pz)
	d := pqx*pqx + pqz*pqz
	t := pqx*dx + pqz*dz
	if d > 0 {
		t /= d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx = float64(px) + t*pqx - float64(x)
	dz = float64(pz) + t*pqz - float64(z)
	return dx*dx + dz*dz
}

// calcAreaOfPolygon2D returns the biased half-signed-area of a simplified
// ring. Positive means the ring winds as an outer contour, negative means
// it is a hole. The (2A+1)/2 rounding is intentionally biased for
// negative areas under Go's truncating integer division — preserved as
// specified rather than "fixed", since downstream consumers may depend on
// the exact bias.
func calcAreaOfPolygon2D(verts []SimplifiedVertex) int {
	area := 0
	n := len(verts)
	j := n - 1
	for i := 0; i < n; i++ {
		vi := verts[i]
		vj := verts[j]
		area += vi.X*vj.Z - vj.X*vi.Z
		j = i
	}
	return (area + 1) / 2
}

func next(i, n int) int { return (i + 1) % n }
func prev(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}
