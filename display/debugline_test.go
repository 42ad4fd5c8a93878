package display

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func requireSegment(t *testing.T, line *DebugLine3D, start, end mgl32.Vec3) {
	t.Helper()

	a, b := line.Endpoints()

	// a tube looks the same in both directions
	if !a.ApproxEqualThreshold(start, 1e-4) {
		a, b = b, a
	}

	require.True(t, a.ApproxEqualThreshold(start, 1e-4), "expected start %v, got %v", start, a)
	require.True(t, b.ApproxEqualThreshold(end, 1e-4), "expected end %v, got %v", end, b)
}

func TestNewDebugLine3D(t *testing.T) {
	testCases := []struct {
		Name       string
		Start, End mgl32.Vec3
	}{
		{Name: "along x", Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{2, 0, 0}},
		{Name: "against x", Start: mgl32.Vec3{2, 1, 1}, End: mgl32.Vec3{-2, 1, 1}},
		{Name: "along y", Start: mgl32.Vec3{0, 0, 0.5}, End: mgl32.Vec3{0, 3, 0.5}},
		{Name: "along z", Start: mgl32.Vec3{1, 1, 0}, End: mgl32.Vec3{1, 1, -4}},
		{Name: "diagonal", Start: mgl32.Vec3{-1, 2, 3}, End: mgl32.Vec3{4, -2, 0.5}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			line := NewDebugLine3D(DefaultDebugLine, tc.Start, tc.End, Cyan)

			require.Equal(t, Cyan, line.Color)
			require.Equal(t, DefaultDebugLine.Mesh.Sections, line.Mesh.Sections)
			require.InDelta(t, tc.End.Sub(tc.Start).Len()/4, line.Mesh.SectionLength, 1e-5)
			require.True(t, line.Position().ApproxEqual(tc.Start.Add(tc.End).Mul(0.5)))

			requireSegment(t, line, tc.Start, tc.End)
		})
	}

	t.Run("zero length", func(t *testing.T) {
		point := mgl32.Vec3{1, 2, 3}
		line := NewDebugLine3D(DefaultDebugLine, point, point, Red)
		require.Zero(t, line.Mesh.Length())
		requireSegment(t, line, point, point)
	})

	t.Run("template is not modified", func(t *testing.T) {
		template := DefaultDebugLine
		NewDebugLine3D(template, mgl32.Vec3{}, mgl32.Vec3{0, 10, 0}, Red)
		require.Equal(t, DefaultDebugLine, template)
	})
}
