package gm

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane is one of the three axis aligned coordinate planes.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return fmt.Sprintf("Plane(%d)", uint8(p))
	}
}

// Lift maps the planar coordinates (u, v) at the given depth along the
// remaining axis into 3d space.
func (p Plane) Lift(u, v, depth float32) mgl32.Vec3 {
	switch p {
	case PlaneXY:
		return mgl32.Vec3{u, v, depth}
	case PlaneYZ:
		return mgl32.Vec3{depth, u, v}
	case PlaneXZ:
		return mgl32.Vec3{u, depth, v}
	default:
		panic(fmt.Sprintf("invalid plane: %d", uint8(p)))
	}
}

// RectCorners returns the four corners of the rectangle lifted into 3d space,
// in order: start, (end x, start y), end, (start x, end y).
func (p Plane) RectCorners(depth float32, rect Rect) [4]mgl32.Vec3 {
	return [4]mgl32.Vec3{
		p.Lift(rect.SX, rect.SY, depth),
		p.Lift(rect.EX, rect.SY, depth),
		p.Lift(rect.EX, rect.EY, depth),
		p.Lift(rect.SX, rect.EY, depth),
	}
}
