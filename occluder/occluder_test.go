package occluder

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/scene"
	"github.com/stretchr/testify/require"
)

type recordingParent struct {
	calls []gm.IVec3
}

func (p *recordingParent) SetOccluded(pos gm.IVec3) {
	p.calls = append(p.calls, pos)
}

type plainParent struct {
	scene.Node3D
}

func attach(t *testing.T, parent scene.Node, occluder *Occluder) (*scene.Tree, scene.NodeId, error) {
	t.Helper()

	tree := scene.NewTree()

	parentId, err := tree.AddRoot(scene.Child(parent))
	require.NoError(t, err)

	occluderId, err := tree.AddChild(parentId, scene.Child(occluder))
	return tree, occluderId, err
}

func TestOccluder_RegistersRoundedCell(t *testing.T) {
	testCases := []struct {
		Position mgl32.Vec3
		Expected gm.IVec3
	}{
		{Position: mgl32.Vec3{1.2, 2.5, -0.5}, Expected: gm.IVecOf(1, 3, 0)},
		{Position: mgl32.Vec3{0, 0, 0}, Expected: gm.IVecOf(0, 0, 0)},
		{Position: mgl32.Vec3{3.49, 3.5, 3.51}, Expected: gm.IVecOf(3, 4, 4)},
		{Position: mgl32.Vec3{-1.2, -1.5, -1.7}, Expected: gm.IVecOf(-1, -1, -2)},
		{Position: mgl32.Vec3{99.9, 42, 7}, Expected: gm.IVecOf(100, 42, 7)},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.Position), func(t *testing.T) {
			parent := &recordingParent{}

			_, _, err := attach(t, parent, New(tc.Position))
			require.NoError(t, err)
			require.Equal(t, []gm.IVec3{tc.Expected}, parent.calls)
		})
	}
}

func TestOccluder_Truncate(t *testing.T) {
	parent := &recordingParent{}

	occluder := New(mgl32.Vec3{1.2, 2.5, -0.5})
	occluder.Rounding = gm.Truncate

	_, _, err := attach(t, parent, occluder)
	require.NoError(t, err)
	require.Equal(t, []gm.IVec3{gm.IVecOf(1, 2, 0)}, parent.calls)
}

func TestOccluder_MissingCapability(t *testing.T) {
	t.Run("parent is not occludable", func(t *testing.T) {
		tree, _, err := attach(t, &plainParent{}, New(mgl32.Vec3{1, 2, 3}))
		require.ErrorIs(t, err, ErrCapabilityMissing)
		require.ErrorContains(t, err, "/plainParent#1/Occluder")

		// the occluder is not part of the tree
		require.Equal(t, 1, tree.Len())
	})

	t.Run("no parent", func(t *testing.T) {
		tree := scene.NewTree()
		_, err := tree.AddRoot(scene.Child(New(mgl32.Vec3{})))
		require.ErrorIs(t, err, ErrNoParent)
		require.Zero(t, tree.Len())
	})

	t.Run("aborts the surrounding insertion", func(t *testing.T) {
		parent := &recordingParent{}

		tree := scene.NewTree()

		_, err := tree.AddRoot(scene.Child(parent,
			scene.Child(New(mgl32.Vec3{1, 1, 1})),
			scene.Child(&plainParent{}, scene.Child(New(mgl32.Vec3{2, 2, 2}))),
		))

		require.ErrorIs(t, err, ErrCapabilityMissing)
		require.Zero(t, tree.Len())

		// the first occluder registered before the insertion failed,
		// the misplaced one never did
		require.Equal(t, []gm.IVec3{gm.IVecOf(1, 1, 1)}, parent.calls)
	})
}

func TestOccluder_ValDoesNotAffectAttach(t *testing.T) {
	for _, val := range []float32{DefaultVal, 0, -17.5, 1e30, float32(math.Inf(1)), float32(math.NaN())} {
		parent := &recordingParent{}

		occluder := New(mgl32.Vec3{1.2, 2.5, -0.5})
		occluder.Val = val

		_, _, err := attach(t, parent, occluder)
		require.NoError(t, err)
		require.Equal(t, []gm.IVec3{gm.IVecOf(1, 3, 0)}, parent.calls)
	}

	require.Equal(t, float32(4.0), New(mgl32.Vec3{}).Val)
}

func TestOccluder_ReattachResamplesPosition(t *testing.T) {
	parent := &recordingParent{}
	occluder := New(mgl32.Vec3{1, 1, 1})

	tree, occluderId, err := attach(t, parent, occluder)
	require.NoError(t, err)

	parentId, ok := tree.Parent(occluderId)
	require.True(t, ok)

	require.NoError(t, tree.Detach(occluderId))

	// detaching has no side effects
	require.Len(t, parent.calls, 1)

	occluder.SetPosition(mgl32.Vec3{4.6, 5, 6})
	require.NoError(t, tree.Attach(parentId, occluderId))

	require.NoError(t, tree.Detach(occluderId))
	require.NoError(t, tree.Attach(parentId, occluderId))

	require.Equal(t, []gm.IVec3{
		gm.IVecOf(1, 1, 1),
		gm.IVecOf(5, 5, 6),
		gm.IVecOf(5, 5, 6),
	}, parent.calls)
}
