package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
)

var VecOne = mgl32.Vec3{1, 1, 1}

// Transform describes the position, rotation and scale of a node relative to its parent.
// Use NewTransform to create an identity transform, the zero value has a scale of zero.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    VecOne,
	}
}

func TransformFromXYZ(x, y, z float32) Transform {
	return NewTransform().WithTranslation(mgl32.Vec3{x, y, z})
}

func (t Transform) WithTranslation(translation mgl32.Vec3) Transform {
	t.Translation = translation
	return t
}

func (t Transform) WithScale(scale mgl32.Vec3) Transform {
	t.Scale = scale
	return t
}

// Rotate rotates the transform around the given axis in parent space.
// The axis must be normalized.
func (t Transform) Rotate(axis mgl32.Vec3, angle gm.Rad) Transform {
	t.Rotation = mgl32.QuatRotate(angle.Radians(), axis).Mul(t.rotation()).Normalize()
	return t
}

// TransformPoint maps a point from local space into parent space.
func (t Transform) TransformPoint(point mgl32.Vec3) mgl32.Vec3 {
	return t.Translation.Add(t.rotation().Rotate(mulEach(t.Scale, point)))
}

// Mul returns the transform of a child with the given local transform, assuming
// that t is the global transform of the parent. Like with most engines, non uniform
// scale combined with rotation is only approximated.
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Translation: t.TransformPoint(child.Translation),
		Rotation:    t.rotation().Mul(child.rotation()),
		Scale:       mulEach(t.Scale, child.Scale),
	}
}

// Mat4 returns the transform as a 4x4 matrix.
func (t Transform) Mat4() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translate.Mul4(t.rotation().Mat4()).Mul4(scale)
}

// rotation returns the rotation, treating the zero quaternion as identity.
func (t Transform) rotation() mgl32.Quat {
	if t.Rotation == (mgl32.Quat{}) {
		return mgl32.QuatIdent()
	}

	return t.Rotation
}

func mulEach(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Node3D is the base of all nodes with a position in 3d space. Embed a
// Node3D value to make a node Spatial.
type Node3D struct {
	Transform Transform
}

func NewNode3D(position mgl32.Vec3) Node3D {
	return Node3D{Transform: NewTransform().WithTranslation(position)}
}

// Spatial is implemented by all nodes embedding Node3D.
type Spatial interface {
	Spatial() *Node3D
}

func (n *Node3D) Spatial() *Node3D {
	return n
}

// Position returns the position relative to the parent node.
func (n *Node3D) Position() mgl32.Vec3 {
	return n.Transform.Translation
}

func (n *Node3D) SetPosition(position mgl32.Vec3) {
	n.Transform.Translation = position
}

// GlobalTransform calculates the transform of the node in world space by multiplying
// the transforms of all spatial ancestors. Nodes that are not spatial do not contribute.
// If the chain of ancestors is broken, the identity transform is returned.
func (t *Tree) GlobalTransform(id NodeId) Transform {
	var chain []Transform

	for id != NoNodeId {
		e, ok := t.entries[id]
		if !ok {
			slog.Warn("Transform hierarchy broken, missing node", slog.Int("nodeId", int(id)))
			return NewTransform()
		}

		if spatial, ok := e.node.(Spatial); ok {
			chain = append(chain, spatial.Spatial().Transform)
		}

		id = e.parent
	}

	global := NewTransform()
	for idx := len(chain) - 1; idx >= 0; idx-- {
		global = global.Mul(chain[idx])
	}

	return global
}
