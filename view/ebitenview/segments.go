package ebitenview

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/scene"
)

// Segment is a debug line in world space.
type Segment struct {
	Start, End mgl32.Vec3
	Color      display.Color
}

// CollectSegments returns all debug lines in the tree in world space.
func CollectSegments(tree *scene.Tree) []Segment {
	var segments []Segment

	for lineId, line := range scene.NodesOf[*display.DebugLine3D](tree) {
		parent := scene.NewTransform()
		if parentId, ok := tree.Parent(lineId); ok {
			parent = tree.GlobalTransform(parentId)
		}

		start, end := line.Endpoints()

		segments = append(segments, Segment{
			Start: parent.TransformPoint(start),
			End:   parent.TransformPoint(end),
			Color: line.Color,
		})
	}

	return segments
}
