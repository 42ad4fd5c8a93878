// Package occluder provides the Occluder node, a mesh instance that marks the grid
// cell at its position as occluded when it enters the scene tree.
package occluder

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/scene"
)

var ErrNoParent = errors.New("occluder has no parent")
var ErrCapabilityMissing = errors.New("parent can not register occluded cells")

// DefaultVal is the default value of Occluder.Val
const DefaultVal = 4.0

// Occludable is implemented by nodes that keep track of occluded grid cells.
type Occludable interface {
	SetOccluded(pos gm.IVec3)
}

var _ scene.EnterTreeHook = (*Occluder)(nil)

// Occluder must be a direct child of an Occludable node. Each time it enters the tree, it
// registers the grid cell at its current position with its parent.
type Occluder struct {
	scene.Node3D

	// Val is carried along with the occluder for external use, it does
	// not influence how the occluder registers itself.
	Val float32

	// Rounding maps the position onto a grid cell.
	Rounding gm.Rounding
}

// New creates a new Occluder at the given position.
func New(position mgl32.Vec3) *Occluder {
	return &Occluder{
		Node3D: scene.NewNode3D(position),
		Val:    DefaultVal,
	}
}

func (o *Occluder) NodeName() string {
	return "Occluder"
}

// Cell returns the grid cell at the current position of the occluder.
func (o *Occluder) Cell() gm.IVec3 {
	return o.Rounding.Vec3(o.Position())
}

// EnterTree registers the current cell with the parent node. Fails if the
// parent is missing or is not Occludable.
func (o *Occluder) EnterTree(ctx *scene.Context) error {
	parent, ok := ctx.Parent()
	if !ok {
		return ErrNoParent
	}

	occludable, ok := parent.(Occludable)
	if !ok {
		return fmt.Errorf("parent of type %T: %w", parent, ErrCapabilityMissing)
	}

	cell := o.Cell()

	slog.Debug("Register occluder",
		slog.String("path", ctx.Path()),
		slog.String("cell", cell.String()))

	occludable.SetOccluded(cell)

	return nil
}
