package display

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/occluder"
	"github.com/oliverbestmann/voxelcast/scene"
)

var _ occluder.Occludable = (*Display)(nil)
var _ scene.ReadyHook = (*Display)(nil)

// CastFinished is triggered on the Display node after the shadowcasting finished.
type CastFinished struct {
	Result *Result
}

type DebugSettings struct {
	// Enabled adds debug lines for every view and occluder region.
	Enabled bool

	// Line is the template used for new debug lines.
	Line DebugLine3D
}

// Display owns the occlusion grid. Occluders register themselves with the Display while
// entering the tree, once the Display is ready it casts the light through the grid.
type Display struct {
	scene.Node3D

	Grid   *Grid
	Caster Caster
	Debug  DebugSettings

	result  Result
	timings Timings
}

// New creates a new Display with a grid of the given size.
func New(size gm.IVec3) *Display {
	return &Display{
		Node3D: scene.NewNode3D(mgl32.Vec3{}),
		Grid:   NewGrid(size),
		Caster: Caster{MaxDepth: DefaultMaxDepth},
		Debug: DebugSettings{
			Enabled: true,
			Line:    DefaultDebugLine,
		},
	}
}

func (d *Display) NodeName() string {
	return "Display"
}

// SetOccluded marks the given cell as occluded. Positions outside the grid
// are reported and otherwise ignored.
func (d *Display) SetOccluded(pos gm.IVec3) {
	if err := d.Grid.Set(pos); err != nil {
		slog.Error("Out of bounds", slog.String("position", pos.String()), slog.String("error", err.Error()))
		return
	}

	slog.Debug("Cell occluded", slog.String("position", pos.String()))
}

// Ready casts the light through the grid and adds debug lines visualising the result.
func (d *Display) Ready(ctx *scene.Context) error {
	d.result = d.Caster.Cast(d.Grid)
	d.timings = d.timings.Add(d.result.Duration)

	slog.Debug("Shadowcasting finished",
		slog.Int("levels", len(d.result.Levels)),
		slog.Int("visible", d.result.Visible.Len()),
		slog.Int("blocking", d.result.Blocking.Len()),
		slog.Duration("duration", d.result.Duration))

	if d.Debug.Enabled {
		for _, level := range d.result.Levels {
			d.DrawDebugRect(ctx, gm.PlaneXY, level.PlaneDepth(), level.View, Cyan)

			for _, occluder := range level.Occluders {
				d.DrawDebugRect(ctx, gm.PlaneXY, level.PlaneDepth(), occluder, Red)
			}
		}
	}

	scene.Trigger(ctx.Tree(), ctx.Id(), CastFinished{Result: &d.result})

	return nil
}

// Result returns the result of the last cast.
func (d *Display) Result() *Result {
	return &d.result
}

// Timings returns the timings of all casts run by this Display.
func (d *Display) Timings() Timings {
	return d.timings
}

// DrawDebugLine adds a new debug line as child of the Display.
func (d *Display) DrawDebugLine(ctx *scene.Context, start, end mgl32.Vec3, color Color) {
	line := NewDebugLine3D(d.Debug.Line, start, end, color)
	ctx.AddChild(scene.Child(line))
}

// DrawDebugRect draws the outline of the rectangle within the given plane at the given depth.
func (d *Display) DrawDebugRect(ctx *scene.Context, plane gm.Plane, depth float32, rect gm.Rect, color Color) {
	corners := plane.RectCorners(depth, rect)

	for idx := range corners {
		d.DrawDebugLine(ctx, corners[idx], corners[(idx+1)%len(corners)], color)
	}
}
