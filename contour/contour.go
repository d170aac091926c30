// Package contour implements the contour extraction stage of a
// navigation-mesh generation pipeline: walking region boundaries of a
// compact heightfield, simplifying the resulting rings, and reorienting
// or merging holes into their enclosing region-mate.
package contour

import (
	"errors"
	"fmt"

	"github.com/krylov-na/SharpNav/heightfield"
	"go.uber.org/zap"
)

// Contour is one region's (or area-portal-delimited sub-region's)
// closed boundary, both as raw per-edge samples and as the simplified
// polyline derived from them.
type Contour struct {
	Vertices    []SimplifiedVertex
	RawVertices []RawVertex
	RegionID    int
	Area        int
}

// ContourSet is the ordered collection a build produces, plus the grid
// metadata downstream polygonization needs to interpret it.
type ContourSet struct {
	Contours   []*Contour
	Bounds     heightfield.Bounds
	CellSize   float64
	CellHeight float64
	Width      int
	Height     int
	BorderSize int
	MaxError   float64
}

// Config carries the tunables of a single BuildContours call.
type Config struct {
	// MaxError is the perpendicular XZ error tolerance (in cell units)
	// the simplifier is allowed to introduce.
	MaxError float64
	// MaxEdgeLen is the longest permitted simplified-edge XZ length, in
	// voxels; 0 disables long-edge tessellation entirely.
	MaxEdgeLen int
	// BuildFlags selects which edge classes are eligible for long-edge
	// tessellation.
	BuildFlags BuildFlags
}

// Validate enforces the two preconditions spec.md's External Interfaces
// section states on its parameters but never turns into an explicit
// check: MaxError must be non-negative and MaxEdgeLen must be
// non-negative.
func (c Config) Validate() error {
	if c.MaxError < 0 {
		return fmt.Errorf("contour: MaxError must be >= 0, got %v", c.MaxError)
	}
	if c.MaxEdgeLen < 0 {
		return fmt.Errorf("contour: MaxEdgeLen must be >= 0, got %v", c.MaxEdgeLen)
	}
	return nil
}

// BuildOption customizes a BuildContours call beyond Config's
// numeric tunables.
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger   *zap.Logger
	maxRings int
}

// WithLogger injects a structured logger for build diagnostics. The
// default is a no-op logger, so a build is silent unless a caller asks
// otherwise.
func WithLogger(l *zap.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// WithBuildBudget caps the number of rings a build will walk at
// maxRings, after which it stops discovering new contours and returns
// whatever it has gathered so far. This is a deterministic degrade, not
// an error: a caller on a hard per-frame time budget gets a bounded,
// reproducible amount of work rather than an unbounded one. A maxRings
// of 0 (the default) means unlimited.
func WithBuildBudget(maxRings int) BuildOption {
	return func(o *buildOptions) { o.maxRings = maxRings }
}

var errNilHeightfield = errors.New("contour: compact heightfield is nil")

// BuildContours walks every region boundary of chf, simplifies each
// ring, prunes degenerate segments, and merges hole contours into their
// enclosing region-mate. It returns an error only for precondition
// violations on the call itself; data-dependent degeneracies (malformed
// rings, unmergeable holes) are reported only via missing or truncated
// contours, per the core's degrade-don't-throw error policy.
func BuildContours(chf *heightfield.CompactHeightfield, cfg Config, opts ...BuildOption) (*ContourSet, error) {
	if chf == nil {
		return nil, errNilHeightfield
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	cset := &ContourSet{
		Bounds:     chf.Bounds,
		CellSize:   chf.CellSize,
		CellHeight: chf.CellHeight,
		Width:      chf.Width - chf.BorderSize*2,
		Height:     chf.Height - chf.BorderSize*2,
		BorderSize: chf.BorderSize,
		MaxError:   cfg.MaxError,
	}
	if chf.BorderSize > 0 {
		pad := float64(chf.BorderSize) * chf.CellSize
		cset.Bounds[0][0] += pad
		cset.Bounds[0][2] += pad
		cset.Bounds[1][0] -= pad
		cset.Bounds[1][2] -= pad
	}

	flags := buildEdgeFlags(chf)

	// A region with holes produces more than one ring, so MaxRegions is
	// only an estimate of the eventual contour count. The floor of 8
	// mirrors the teacher's own rcMax(chf.maxRegions, 8).
	initialCapacity := max(chf.MaxRegions, 8)
	cset.Contours = make([]*Contour, 0, initialCapacity)

	ringsWalked, ringsDiscarded := 0, 0
scan:
	for y := 0; y < chf.Height; y++ {
		for x := 0; x < chf.Width; x++ {
			cell := chf.CellAt(x, y)
			for i := cell.Index; i < cell.Index+cell.Count; i++ {
				if flags[i] == 0 || flags[i] == 0xf {
					continue
				}
				region := chf.Spans[i].Region
				if heightfield.IsBorderOrNull(region) {
					continue
				}
				if o.maxRings > 0 && ringsWalked >= o.maxRings {
					o.logger.Debug("contour build budget exhausted, stopping early",
						zap.Int("max_rings", o.maxRings),
					)
					break scan
				}
				area := chf.Areas[i]

				raw := walkContour(chf, flags, x, y, i)
				simplified := simplifyContour(raw, cfg.MaxError, cfg.MaxEdgeLen, cfg.BuildFlags)
				simplified = removeDegenerateSegments(simplified)
				ringsWalked++

				if len(simplified) < 3 {
					ringsDiscarded++
					continue
				}

				if chf.BorderSize > 0 {
					offsetXZ(raw, simplified, chf.BorderSize)
				}

				if len(cset.Contours) == cap(cset.Contours) {
					o.logger.Debug("growing contour set beyond initial capacity estimate",
						zap.Int("initial_capacity", initialCapacity),
						zap.Int("contours_so_far", len(cset.Contours)),
					)
				}

				cset.Contours = append(cset.Contours, &Contour{
					Vertices:    simplified,
					RawVertices: raw,
					RegionID:    region,
					Area:        area,
				})
			}
		}
	}

	holesMerged, holesUnmerged := mergeHoles(cset.Contours)

	o.logger.Debug("contour build complete",
		zap.Int("rings_walked", ringsWalked),
		zap.Int("rings_discarded", ringsDiscarded),
		zap.Int("contours", len(cset.Contours)),
		zap.Int("holes_merged", holesMerged),
		zap.Int("holes_unmerged", holesUnmerged),
	)

	return cset, nil
}

// offsetXZ subtracts borderSize from every raw and simplified vertex's
// X and Z, undoing the padding the upstream heightfield build added.
func offsetXZ(raw []RawVertex, simplified []SimplifiedVertex, borderSize int) {
	for i := range raw {
		raw[i].X -= borderSize
		raw[i].Z -= borderSize
	}
	for i := range simplified {
		simplified[i].X -= borderSize
		simplified[i].Z -= borderSize
	}
}
