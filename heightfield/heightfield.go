// Package heightfield defines the read-only compact heightfield contract
// consumed by the contour extraction stage. Voxelization, erosion, the
// distance field, and region labeling that produce this data live upstream
// and are not part of this package.
package heightfield

import "github.com/go-gl/mathgl/mgl64"

const (
	// NotConnected marks a span's connection slot for a direction with no
	// walkable neighbor.
	NotConnected = 0x3f

	// BorderReg flags a region id as a frame-boundary sentinel. Spans
	// carrying this bit never originate a contour but do bound one.
	BorderReg = 0x8000

	// NullArea is the area code of a span that carries no area
	// classification.
	NullArea = 0
)

// Cell indexes the contiguous run of spans occupying one column of the
// grid.
type Cell struct {
	Index int
	Count int
}

// allDirectionsDisconnected packs NotConnected into all four 6-bit
// connection slots. It is what a Span's connection word must start as:
// the Go zero value (all bits 0) would otherwise decode direction 0's
// slot as "connected to neighbor span 0", which is wrong.
const allDirectionsDisconnected = NotConnected | NotConnected<<6 | NotConnected<<12 | NotConnected<<18

// Span is one walkable vertical interval within a grid cell: a height, a
// region label, an area-orthogonal connection word, and (via Areas) an
// area code carried alongside it in the owning CompactHeightfield.
type Span struct {
	Minimum    int
	Region     int
	Height     int
	connection int
}

// NewSpan returns a Span with no connections set in any direction.
// Callers must use this (or explicitly call SetConnection for all four
// directions) rather than a bare Span{} literal.
func NewSpan(minimum, region, height int) Span {
	return Span{Minimum: minimum, Region: region, Height: height, connection: allDirectionsDisconnected}
}

// GetConnection returns the neighbor span index in direction dir, or
// NotConnected if there is no walkable neighbor that way.
func (s Span) GetConnection(dir int) int {
	shift := dir * 6
	return (s.connection >> shift) & 0x3f
}

// SetConnection packs neighborIndex into direction dir's 6-bit slot.
func (s *Span) SetConnection(dir, neighborIndex int) {
	shift := dir * 6
	s.connection = (s.connection &^ (0x3f << shift)) | ((neighborIndex & 0x3f) << shift)
}

// IsConnected reports whether direction dir has a walkable neighbor.
func (s Span) IsConnected(dir int) bool {
	return s.GetConnection(dir) != NotConnected
}

// Bounds is a world-space axis-aligned box, minimum then maximum corner.
type Bounds [2]mgl64.Vec3

// CompactHeightfield is the column-oriented voxelization the contour
// stage walks. It is read-only from this package's perspective: callers
// own construction and must keep it alive for the duration of one build
// call, but it is never retained afterward.
type CompactHeightfield struct {
	Width, Height int // grid dimensions in cells: Width = W, Height = H
	SpanCount     int
	BorderSize    int
	MaxRegions    int
	Bounds        Bounds
	CellSize      float64
	CellHeight    float64

	Cells []Cell // len == Width*Height
	Spans []Span // len == SpanCount
	Areas []int  // len == SpanCount, parallel to Spans
}

// CellAt returns the column at grid cell (x, y).
func (chf *CompactHeightfield) CellAt(x, y int) Cell {
	return chf.Cells[x+y*chf.Width]
}

// IsBorderOrNull reports whether a raw region id (no flag bits stripped
// by the caller) identifies a span outside any real region.
func IsBorderOrNull(region int) bool {
	return region == 0 || region&BorderReg != 0
}

// IsBorder reports whether a raw region id carries the border sentinel.
func IsBorder(region int) bool {
	return region&BorderReg != 0
}

// Direction encoding is fixed: 0 = -X, 1 = +Z, 2 = +X, 3 = -Z — a
// right-handed 4-neighborhood, clockwise when viewed from above.
var dirOffsetX = [4]int{-1, 0, 1, 0}
var dirOffsetY = [4]int{0, 1, 0, -1}

// GetDirOffsetX returns the x-axis cell offset for direction dir.
func GetDirOffsetX(dir int) int { return dirOffsetX[dir&0x3] }

// GetDirOffsetY returns the z-axis cell offset for direction dir.
func GetDirOffsetY(dir int) int { return dirOffsetY[dir&0x3] }
