package display

import (
	"testing"

	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/stretchr/testify/require"
)

func TestCaster_EmptyGrid(t *testing.T) {
	grid := NewGrid(DefaultGridSize)

	result := Caster{MaxDepth: 5}.Cast(grid)

	// nothing blocks, so every depth is visited exactly once
	require.Len(t, result.Levels, 5)
	require.Zero(t, result.Blocking.Len())

	for idx, level := range result.Levels {
		depth := idx + 1
		require.Equal(t, depth, level.Depth)
		require.Equal(t, gm.RectOf(0, 0, level.PlaneDepth(), level.PlaneDepth()), level.View)
		require.Equal(t, []gm.Rect{level.View}, level.Unblocked)
	}

	// the view at depth d covers d*d cells
	require.Equal(t, 1+4+9+16+25, result.Visible.Len())
	require.True(t, result.Visible.Has(gm.IVecOf(4, 4, 5)))
	require.False(t, result.Visible.Has(gm.IVecOf(5, 0, 5)))
}

func TestCaster_MaxDepth(t *testing.T) {
	grid := NewGrid(DefaultGridSize)

	require.Len(t, Caster{MaxDepth: 2}.Cast(grid).Levels, 2)
	require.Len(t, Caster{}.Cast(grid).Levels, DefaultMaxDepth)
}

func TestCaster_FullyBlocked(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	require.NoError(t, grid.Set(gm.IVecOf(0, 0, 1)))

	result := Caster{MaxDepth: 5}.Cast(grid)

	require.Len(t, result.Levels, 1)
	require.Empty(t, result.Levels[0].Unblocked)
	require.Len(t, result.Levels[0].Occluders, 1)
	require.Equal(t, []gm.IVec3{gm.IVecOf(0, 0, 1)}, result.BlockingCells())
	require.Zero(t, result.Visible.Len())
}

func TestCaster_Shadow(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	require.NoError(t, grid.Set(gm.IVecOf(1, 1, 3)))

	result := Caster{MaxDepth: 5}.Cast(grid)

	require.Equal(t, []gm.IVec3{gm.IVecOf(1, 1, 3)}, result.BlockingCells())

	// the view is split up behind the occluder
	require.Greater(t, len(result.Levels), 5)

	require.False(t, result.Visible.Has(gm.IVecOf(1, 1, 3)))
	require.True(t, result.Visible.Has(gm.IVecOf(0, 0, 3)))
	require.True(t, result.Visible.Has(gm.IVecOf(0, 0, 5)))
	require.True(t, result.Visible.Has(gm.IVecOf(4, 4, 5)))

	// the cell right behind the occluder is in its shadow
	require.False(t, result.Visible.Has(gm.IVecOf(2, 2, 5)))

	// the area of all unblocked regions at depth 3 is the view minus the occluder
	var unblocked float32
	for _, level := range result.Levels {
		if level.Depth == 3 {
			for _, rect := range level.Unblocked {
				unblocked += rect.Area()
			}
		}
	}

	occluderSize := 1.5 - (0.5 - 0.5/3.5)
	require.InDelta(t, 2.5*2.5-occluderSize*occluderSize, unblocked, 1e-4)
}

func TestSaturate(t *testing.T) {
	require.Equal(t, 0, floorIndex(-3.5, 10))
	require.Equal(t, 2, floorIndex(2.9, 10))
	require.Equal(t, 3, ceilIndex(2.1, 10))
	require.Equal(t, 10, ceilIndex(1e20, 10))
}

func TestTimings(t *testing.T) {
	var timings Timings
	timings = timings.Add(100)
	timings = timings.Add(300)

	require.Equal(t, 2, timings.Count)
	require.EqualValues(t, 100, timings.Min)
	require.EqualValues(t, 300, timings.Max)
	require.EqualValues(t, 300, timings.Latest)
	require.EqualValues(t, 110, timings.MovingAverage)
}
