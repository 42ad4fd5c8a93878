package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/scene"
	"github.com/stretchr/testify/require"
)

func shadowDisplay(t *testing.T) *display.Display {
	t.Helper()

	d := display.New(gm.IVecOf(10, 10, 10))
	d.Debug.Enabled = false
	require.NoError(t, d.Grid.Set(gm.IVecOf(1, 1, 3)))

	tree := scene.NewTree()
	_, err := tree.AddRoot(scene.Child(d))
	require.NoError(t, err)

	return d
}

func TestBuildSlices(t *testing.T) {
	d := shadowDisplay(t)

	slices := BuildSlices(d.Grid, d.Result(), display.DefaultMaxDepth)
	require.Len(t, slices, display.DefaultMaxDepth)

	first := slices[0]
	require.Equal(t, 1, first.Depth)
	require.Equal(t, Visible, first.At(0, 0))
	require.Equal(t, Unseen, first.At(1, 0))
	require.Equal(t, Unseen, first.At(-1, 0))

	third := slices[2]
	require.Equal(t, Blocking, third.At(1, 1))
	require.Equal(t, Visible, third.At(0, 0))

	last := slices[4]
	require.Equal(t, 5, last.Depth)
	require.NotEqual(t, Visible, last.At(2, 2))
}

func TestBuildSlices_SmallGrid(t *testing.T) {
	grid := display.NewGrid(gm.IVecOf(2, 2, 3))
	result := display.Caster{}.Cast(grid)

	slices := BuildSlices(grid, &result, display.DefaultMaxDepth)
	require.Len(t, slices, 2)
	require.Equal(t, 2, slices[0].Width)
	require.Equal(t, 2, slices[0].Height)
}

func TestCellKind_Rune(t *testing.T) {
	require.Equal(t, ' ', Unseen.Rune())
	require.Equal(t, '.', Visible.Rune())
	require.Equal(t, '#', Blocking.Rune())
	require.Equal(t, '+', Hidden.Rune())
}

func TestViewer_HandleKey(t *testing.T) {
	viewer := NewViewer(shadowDisplay(t))

	slice, ok := viewer.Current()
	require.True(t, ok)
	require.Equal(t, 1, slice.Depth)

	require.True(t, viewer.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	slice, _ = viewer.Current()
	require.Equal(t, 1, slice.Depth)

	for range 10 {
		require.True(t, viewer.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	}

	slice, _ = viewer.Current()
	require.Equal(t, display.DefaultMaxDepth, slice.Depth)

	require.False(t, viewer.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, viewer.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewer_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	screen.SetSize(80, 24)

	viewer := NewViewer(shadowDisplay(t))

	// move to depth 3
	viewer.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	viewer.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	viewer.Draw(screen)

	slice, _ := viewer.Current()

	// rows are flipped, y grows upwards
	row := func(y int) int { return 3 + slice.Height - 1 - y }

	ch, _, _, _ := screen.GetContent(1*2, row(1))
	require.Equal(t, '#', ch)

	ch, _, _, _ = screen.GetContent(0, row(0))
	require.Equal(t, '.', ch)

	ch, _, _, _ = screen.GetContent(0, 0)
	require.Equal(t, 'd', ch)
}
