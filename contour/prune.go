package contour

// removeDegenerateSegments removes, in a single forward scan, any vertex
// whose XZ position coincides with its successor's. This intentionally
// matches the source behavior rather than a fully canonical dedup: after a
// removal the scan moves on without comparing the vertex that slid into the
// removed slot with its new successor, so a run of three or more
// XZ-coincident vertices leaves a coincident pair behind. Downstream
// consumers only require |ring| >= 3, not a canonical ring.
func removeDegenerateSegments(verts []SimplifiedVertex) []SimplifiedVertex {
	n := len(verts)
	for i := 0; i < n; i++ {
		ni := next(i, n)
		if verts[i].X == verts[ni].X && verts[i].Z == verts[ni].Z {
			verts = append(verts[:i], verts[i+1:]...)
			n--
		}
	}
	return verts
}
