package engine

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/trvswgnr/maze-raycaster/model"
)

const (
	// NoHitDistance is reported when a ray leaves the grid or runs past the
	// march limit without striking anything.
	NoHitDistance = math.MaxFloat64

	// DefaultStepDivisor sets the march step to cellSize/DefaultStepDivisor.
	DefaultStepDivisor = 32

	// refineIterations halves the step interval that contains a hit this
	// many times to pin the wall face.
	refineIterations = 20
)

// Side is the axis of the wall face a ray struck.
type Side int

const (
	// SideX faces run along the y axis (x = const), hit by mostly
	// east/west rays.
	SideX Side = iota
	// SideY faces run along the x axis (y = const).
	SideY
)

// RayHit is the result of one cast.
type RayHit struct {
	Hit bool

	// Distance is perpendicular to the view direction (fisheye corrected).
	Distance float64
	// RayLength is the raw distance travelled along the ray.
	RayLength float64

	Kind     model.CellKind
	Row, Col int
	Side     Side
	Point    geom.Vector2

	// Offset is the position along the struck face in [0, 1), used as the
	// horizontal texture coordinate.
	Offset float64
}

// CastOptions tune the marcher. The zero value is usable.
type CastOptions struct {
	// Step is the march increment in world units. Zero means
	// cellSize/DefaultStepDivisor.
	Step float64
	// MaxDistance bounds the march. Zero means the grid diagonal.
	MaxDistance float64
	// Permissive stops at any non-empty cell instead of wall-like cells
	// only. Used by the top-down view.
	Permissive bool
	// Trace, when set, is called with every marched point before the hit.
	Trace func(x, y float64)
}

func (o CastOptions) step(cellSize float64) float64 {
	if o.Step > 0 {
		return o.Step
	}
	return cellSize / DefaultStepDivisor
}

func (o CastOptions) maxDistance(grid *model.Grid) float64 {
	if o.MaxDistance > 0 {
		return o.MaxDistance
	}
	return math.Hypot(grid.Width(), grid.Height())
}

func (o CastOptions) stops(kind model.CellKind) bool {
	if o.Permissive {
		return kind != model.CellKind_Empty
	}
	return kind.IsWall()
}

// ColumnAngle is the absolute angle of the ray for a screen column.
func ColumnAngle(viewer model.Viewer, col, width int) float64 {
	return viewer.Angle - viewer.FOV/2 + viewer.FOV*(float64(col)/float64(width))
}

// ProjectionDistance is the distance from the eye to the projection plane
// for a screen half width and field of view.
func ProjectionDistance(halfWidth, fov float64) float64 {
	return halfWidth / math.Tan(fov/2)
}

// Cast marches from the viewer along rayAngle in fixed steps until it enters
// a stopping cell, leaves the grid, or exceeds the march limit.
func Cast(grid *model.Grid, viewer model.Viewer, rayAngle float64, opts CastOptions) RayHit {
	cellSize := grid.CellSize()
	step := opts.step(cellSize)
	maxDist := opts.maxDistance(grid)
	dirX, dirY := math.Cos(rayAngle), math.Sin(rayAngle)
	origin := viewer.Position

	kindAt := func(d float64) (model.CellKind, bool) {
		return grid.KindAt(origin.X+d*dirX, origin.Y+d*dirY)
	}

	prev := 0.0
	for i := 0; ; i++ {
		d := float64(i) * step
		if d > maxDist {
			break
		}

		kind, ok := kindAt(d)
		if !ok {
			break
		}
		if opts.stops(kind) {
			if i > 0 {
				d = refine(prev, d, func(t float64) bool {
					k, ok := kindAt(t)
					return ok && opts.stops(k)
				})
			}
			return newHit(grid, viewer, rayAngle, d, origin.X+d*dirX, origin.Y+d*dirY)
		}

		if opts.Trace != nil {
			opts.Trace(origin.X+d*dirX, origin.Y+d*dirY)
		}
		prev = d
	}

	return RayHit{Distance: NoHitDistance, RayLength: NoHitDistance}
}

// refine bisects [lo, hi] where lo does not stop and hi does.
func refine(lo, hi float64, stops func(float64) bool) float64 {
	for i := 0; i < refineIterations; i++ {
		mid := (lo + hi) / 2
		if stops(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}

func newHit(grid *model.Grid, viewer model.Viewer, rayAngle, length, x, y float64) RayHit {
	cellSize := grid.CellSize()
	row, col := grid.CellOf(x, y)

	// the axis whose coordinate sits nearest a cell boundary names the face;
	// the other axis runs along it
	localX := x - float64(col)*cellSize
	localY := y - float64(row)*cellSize
	edgeX := math.Min(localX, cellSize-localX)
	edgeY := math.Min(localY, cellSize-localY)

	side := SideY
	offset := localX / cellSize
	if edgeX < edgeY {
		side = SideX
		offset = localY / cellSize
	}

	return RayHit{
		Hit:       true,
		Distance:  length * math.Cos(rayAngle-viewer.Angle),
		RayLength: length,
		Kind:      grid.At(row, col),
		Row:       row,
		Col:       col,
		Side:      side,
		Point:     geom.Vector2{X: x, Y: y},
		Offset:    clampUnit(offset),
	}
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
