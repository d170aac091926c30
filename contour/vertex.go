package contour

// Bit layout for the region id field carried by raw and simplified
// vertices. The low bits hold a neighbor region id; the two high bits are
// dedicated flags set by the walker and consumed by the simplifier.
const (
	RegionMask   = 0xffff
	BorderVertex = 0x10000
	AreaBorder   = 0x20000
)

// RawVertex is one per-boundary-edge sample the walker emits: an integer
// voxel corner position plus the region id (with flag bits) of the span
// on the far side of that edge.
type RawVertex struct {
	X, Y, Z int
	Region  int
}

// SimplifiedVertex is a point kept by the Douglas-Peucker-style reduction.
// Data holds the source raw-vertex index while simplification is in
// progress, and the packed region id once the simplifier's final pass
// rewrites it.
type SimplifiedVertex struct {
	X, Y, Z int
	Data    int
}
