package display

import (
	"cmp"
	"math"
	"time"

	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/internal/set"
)

const DefaultMaxDepth = 5

// Caster casts light from the origin of a Grid along the positive z axis. Each depth d
// is a slice of cells at z = d, the light enters a slice through the plane at z = d - 0.5.
type Caster struct {
	MaxDepth int
}

// Level describes one visited view region at a given depth.
type Level struct {
	Depth int

	// Slope is the region of slopes that is still unblocked when entering this depth.
	Slope gm.Rect

	// View is the visible region within the plane at Depth - 0.5.
	View gm.Rect

	// Occluders are the regions within the plane blocked by occluded cells.
	Occluders []gm.Rect

	// Unblocked is what remains of View after removing Occluders.
	Unblocked []gm.Rect
}

// PlaneDepth returns the z coordinate of the plane the view rect lives in.
func (l Level) PlaneDepth() float32 {
	return float32(l.Depth) - 0.5
}

type Result struct {
	Levels []Level

	// Visible holds all cells that are not occluded and lie within a view region.
	Visible set.Set[gm.IVec3]

	// Blocking holds all occluded cells that cast a shadow.
	Blocking set.Set[gm.IVec3]

	Duration time.Duration
}

// VisibleCells returns the visible cells in x, y, z order.
func (r *Result) VisibleCells() []gm.IVec3 {
	return r.Visible.Sorted(compareIVec3)
}

// BlockingCells returns the blocking cells in x, y, z order.
func (r *Result) BlockingCells() []gm.IVec3 {
	return r.Blocking.Sorted(compareIVec3)
}

func compareIVec3(a, b gm.IVec3) int {
	return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z))
}

// Cast runs the recursive shadowcasting on the given grid.
func (c Caster) Cast(grid *Grid) Result {
	startTime := time.Now()

	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var result Result

	initialSlope := gm.Rect{
		SX: float32(math.Inf(1)),
		SY: float32(math.Inf(1)),
		EX: 1,
		EY: 1,
	}

	castLight(grid, &result, maxDepth, initialSlope, 1)

	result.Duration = time.Since(startTime)

	return result
}

func castLight(grid *Grid, result *Result, maxDepth int, slope gm.Rect, depth int) {
	if depth > maxDepth {
		return
	}

	planeDepth := float32(depth) - 0.5

	// start and end slopes of the visible rectangle at this depth
	view := gm.Rect{
		SX: planeDepth / slope.SX,
		SY: planeDepth / slope.SY,
		EX: planeDepth / slope.EX,
		EY: planeDepth / slope.EY,
	}

	level := Level{
		Depth: depth,
		Slope: slope,
		View:  view,
	}

	size := grid.Size()

	// cells which could possibly occlude the view at this depth
	sx := max(floorIndex(view.SX, int(size.X))-1, 0)
	sy := max(floorIndex(view.SY, int(size.Y))-1, 0)
	ex := ceilIndex(view.EX, int(size.X))
	ey := ceilIndex(view.EY, int(size.Y))

	fDepth := float32(depth)

	for x := sx; x < ex; x++ {
		for y := sy; y < ey; y++ {
			xf := float32(x)
			yf := float32(y)

			if !grid.Occluded(x, y, depth) {
				cell := gm.RectOf(xf-0.5, yf-0.5, xf+0.5, yf+0.5)
				if cell.Intersects(view) {
					result.Visible.Insert(gm.IVecOf(int32(x), int32(y), int32(depth)))
				}

				continue
			}

			// the shadow of the cell extends towards the origin, as its
			// front face is closer to the light than the plane
			occluder := gm.Rect{
				SX: xf - 0.5 - (xf-0.5)/(fDepth+0.5),
				SY: yf - 0.5 - (yf-0.5)/(fDepth+0.5),
				EX: xf + 0.5,
				EY: yf + 0.5,
			}

			if occluder.Intersects(view) {
				result.Blocking.Insert(gm.IVecOf(int32(x), int32(y), int32(depth)))
			}

			level.Occluders = append(level.Occluders, occluder)
		}
	}

	level.Unblocked = gm.SubtractRects(view, level.Occluders)

	result.Levels = append(result.Levels, level)

	// convert unblocked rectangles back to slopes and continue at the next depth
	for _, rect := range level.Unblocked {
		nextSlope := gm.Rect{
			SX: planeDepth / rect.SX,
			SY: planeDepth / rect.SY,
			EX: planeDepth / rect.EX,
			EY: planeDepth / rect.EY,
		}

		castLight(grid, result, maxDepth, nextSlope, depth+1)
	}
}

// floorIndex converts the value into a cell index, saturating at zero and limit.
func floorIndex(value float32, limit int) int {
	return saturate(math.Floor(float64(value)), limit)
}

// ceilIndex converts the value into an exclusive end index, saturating at zero and limit.
func ceilIndex(value float32, limit int) int {
	return saturate(math.Ceil(float64(value)), limit)
}

func saturate(value float64, limit int) int {
	switch {
	case math.IsNaN(value) || value <= 0:
		return 0
	case value >= float64(limit):
		return limit
	default:
		return int(value)
	}
}
