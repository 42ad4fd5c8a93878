package display

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/scene"
)

var right = mgl32.Vec3{1, 0, 0}

// TubeMesh is a tube made of a number of sections. The tube is centered
// on the origin and extends along the x axis.
type TubeMesh struct {
	Radius        float32
	Sections      int
	SectionLength float32
}

// Length returns the total length of the tube.
func (m TubeMesh) Length() float32 {
	return float32(m.Sections) * m.SectionLength
}

// DefaultDebugLine is the template used to create debug lines.
var DefaultDebugLine = DebugLine3D{
	Mesh: TubeMesh{
		Radius:        0.01,
		Sections:      4,
		SectionLength: 0.25,
	},
	Color: White,
}

// DebugLine3D is a line segment rendered as a thin tube.
type DebugLine3D struct {
	scene.Node3D
	Mesh  TubeMesh
	Color Color
}

func (l *DebugLine3D) NodeName() string {
	return "DebugLine3D"
}

// NewDebugLine3D creates a new line from start to end based on the given template.
//
// The template tube going from (-length/2, 0, 0) to (length/2, 0, 0) is resized, rotated and moved
// such that it starts at start and ends at end.
func NewDebugLine3D(template DebugLine3D, start, end mgl32.Vec3, color Color) *DebugLine3D {
	line := template
	line.Transform = scene.NewTransform()
	line.Color = color

	if line.Mesh.Sections <= 0 {
		line.Mesh.Sections = 1
	}

	target := end.Sub(start)
	length := target.Len()

	// change the length of the tube to match the length of (end - start)
	line.Mesh.SectionLength = length / float32(line.Mesh.Sections)

	if length > 0 {
		direction := target.Mul(1 / length)

		// rotate the tube so it points in the same direction as (end - start). A tube
		// parallel to the x axis looks the same in both directions.
		axis := right.Cross(direction)
		if axis.Len() > 1e-6 {
			angle := math.Acos(float64(clamp(right.Dot(direction), -1, 1)))
			line.Transform = line.Transform.Rotate(axis.Normalize(), gm.Rad(angle))
		}
	}

	// move to the center of (end - start)
	line.SetPosition(start.Add(end).Mul(0.5))

	return &line
}

// Endpoints returns both ends of the line in the space of the parent node.
func (l *DebugLine3D) Endpoints() (mgl32.Vec3, mgl32.Vec3) {
	half := l.Mesh.Length() / 2
	start := l.Transform.TransformPoint(mgl32.Vec3{-half, 0, 0})
	end := l.Transform.TransformPoint(mgl32.Vec3{half, 0, 0})
	return start, end
}
