package contour

// mergeHoles reorients and fuses hole contours (negative signed area)
// into a same-region positive-area contour, per component 4.6. It
// returns how many holes were merged and how many were left as-is
// (no mergeable outline found, or no mutually-visible vertex pair).
func mergeHoles(contours []*Contour) (merged, unmerged int) {
	isHole := make([]bool, len(contours))
	for i, c := range contours {
		isHole[i] = calcAreaOfPolygon2D(c.Vertices) < 0
	}

	for i, c := range contours {
		if !isHole[i] {
			continue
		}

		outlineIdx := -1
		for j, m := range contours {
			if j == i || len(m.Vertices) == 0 || calcAreaOfPolygon2D(m.Vertices) <= 0 {
				continue
			}
			if m.RegionID == c.RegionID {
				outlineIdx = j
				break
			}
		}
		if outlineIdx == -1 {
			unmerged++
			continue
		}

		outline := contours[outlineIdx]
		ia, ib, ok := closestIndices(outline.Vertices, c.Vertices)
		if !ok {
			unmerged++
			continue
		}
		outline.Vertices = splice(outline.Vertices, c.Vertices, ia, ib)
		merged++
	}

	return merged, unmerged
}

// closestIndices finds the pair (ia in A, ib in B) minimizing squared
// XZ distance, restricted to candidates where B[ib] lies in the forward
// cone of A[ia] (the intersection of the left-or-on half-planes of A's
// incoming and outgoing edge at ia). Returns ok=false if no pair in the
// whole search satisfies the cone.
func closestIndices(a, b []SimplifiedVertex) (ia, ib int, ok bool) {
	na, nb := len(a), len(b)
	bestDist := -1
	ia, ib = -1, -1

	for i := 0; i < na; i++ {
		ap := a[prev(i, na)]
		ac := a[i]
		an := a[next(i, na)]
		for j := 0; j < nb; j++ {
			bx, bz := b[j].X, b[j].Z
			if !leftOn(ap.X, ap.Z, ac.X, ac.Z, bx, bz) {
				continue
			}
			if !leftOn(ac.X, ac.Z, an.X, an.Z, bx, bz) {
				continue
			}
			dx, dz := ac.X-bx, ac.Z-bz
			d := dx*dx + dz*dz
			if bestDist == -1 || d < bestDist {
				bestDist = d
				ia, ib = i, j
			}
		}
	}

	return ia, ib, ia != -1
}

// splice rotates each ring to its pivot vertex and doubles the pivot,
// producing a single ring of length |a|+|b|+2 that walks around a,
// crosses into b at the closest mutually-visible pair, walks around b,
// and returns.
func splice(a, b []SimplifiedVertex, ia, ib int) []SimplifiedVertex {
	na, nb := len(a), len(b)
	out := make([]SimplifiedVertex, 0, na+nb+2)
	for i := 0; i <= na; i++ {
		out = append(out, a[(ia+i)%na])
	}
	for i := 0; i <= nb; i++ {
		out = append(out, b[(ib+i)%nb])
	}
	return out
}
