package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	require.True(t, expected.ApproxEqualThreshold(actual, 1e-5), "expected %v, got %v", expected, actual)
}

func TestTransform(t *testing.T) {
	t.Run("zero rotation is identity", func(t *testing.T) {
		tr := Transform{Scale: VecOne, Translation: mgl32.Vec3{1, 2, 3}}
		requireVecInDelta(t, mgl32.Vec3{2, 2, 3}, tr.TransformPoint(mgl32.Vec3{1, 0, 0}))
	})

	t.Run("rotate then translate", func(t *testing.T) {
		// rotate by 90° around z, so x maps onto y
		tr := TransformFromXYZ(10, 0, 0).Rotate(mgl32.Vec3{0, 0, 1}, gm.DegToRad(90))
		requireVecInDelta(t, mgl32.Vec3{10, 1, 0}, tr.TransformPoint(mgl32.Vec3{1, 0, 0}))

		// the matrix does the same
		point := tr.Mat4().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
		requireVecInDelta(t, mgl32.Vec3{10, 1, 0}, point)
	})

	t.Run("scale", func(t *testing.T) {
		tr := NewTransform().WithScale(mgl32.Vec3{2, 2, 2}).WithTranslation(mgl32.Vec3{0, 0, 5})
		requireVecInDelta(t, mgl32.Vec3{20, 0, 5}, tr.TransformPoint(mgl32.Vec3{10, 0, 0}))
	})

	t.Run("mul composes parent and child", func(t *testing.T) {
		parent := TransformFromXYZ(1, 0, 0).Rotate(mgl32.Vec3{0, 0, 1}, gm.DegToRad(90))
		child := TransformFromXYZ(2, 0, 0)

		global := parent.Mul(child)
		requireVecInDelta(t, mgl32.Vec3{1, 2, 0}, global.Translation)
		requireVecInDelta(t, mgl32.Vec3{1, 3, 0}, global.TransformPoint(mgl32.Vec3{1, 0, 0}))
	})
}

type spatialNode struct {
	Node3D
}

func TestTree_GlobalTransform(t *testing.T) {
	tree := NewTree()

	root := &spatialNode{Node3D: NewNode3D(mgl32.Vec3{1, 1, 1})}
	child := &spatialNode{Node3D: NewNode3D(mgl32.Vec3{0, 2, 0})}

	type group struct{}

	rootId, err := tree.AddRoot(Child(root, Child(&group{}, Child(child))))
	require.NoError(t, err)

	groupId := tree.Children(rootId)[0]
	childId := tree.Children(groupId)[0]

	requireVecInDelta(t, mgl32.Vec3{1, 3, 1}, tree.GlobalTransform(childId).Translation)

	root.SetPosition(mgl32.Vec3{0, 0, 0})
	requireVecInDelta(t, mgl32.Vec3{0, 2, 0}, tree.GlobalTransform(childId).Translation)
	requireVecInDelta(t, mgl32.Vec3{0, 2, 0}, child.Position().Add(root.Position()))

	t.Run("broken chain is identity", func(t *testing.T) {
		// forget the group without unlinking its child
		delete(tree.entries, groupId)

		require.Equal(t, NewTransform(), tree.GlobalTransform(childId))
		require.Equal(t, NewTransform(), tree.GlobalTransform(NodeId(1000)))
	})
}
