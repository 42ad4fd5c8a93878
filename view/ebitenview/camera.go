package ebitenview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/gm"
)

// Camera orbits around Target at the given Distance.
type Camera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      gm.Rad
	Pitch    gm.Rad
	Fov      gm.Rad
}

const maxPitch = gm.Rad(math.Pi/2 - 0.01)

// DefaultCamera looks at the region close to the origin, where the light is cast into the grid.
func DefaultCamera() Camera {
	return Camera{
		Target:   mgl32.Vec3{2, 2, 3},
		Distance: 12,
		Yaw:      gm.DegToRad(-135),
		Pitch:    gm.DegToRad(25),
		Fov:      gm.DegToRad(60),
	}
}

// Eye returns the position of the camera.
func (c Camera) Eye() mgl32.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(c.Yaw))
	sinPitch, cosPitch := math.Sincos(float64(c.Pitch))

	offset := mgl32.Vec3{
		float32(cosPitch * sinYaw),
		float32(sinPitch),
		float32(cosPitch * cosYaw),
	}

	return c.Target.Add(offset.Mul(c.Distance))
}

// Orbit rotates the camera around its target. Pitch is kept away from the poles.
func (c Camera) Orbit(yaw, pitch gm.Rad) Camera {
	c.Yaw = (c.Yaw + yaw).Normalized()
	c.Pitch = min(max(c.Pitch+pitch, -maxPitch), maxPitch)
	return c
}

// Zoom multiplies the distance to the target by the given factor.
func (c Camera) Zoom(factor float32) Camera {
	c.Distance = min(max(c.Distance*factor, 1), 500)
	return c
}

// ViewProjection returns the combined view and projection matrix.
func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	projection := mgl32.Perspective(c.Fov.Radians(), aspect, 0.1, 1000)
	view := mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
	return projection.Mul4(view)
}

// Project maps the point onto the screen of the given size. Points behind
// the camera can not be projected.
func Project(viewProjection mgl32.Mat4, point mgl32.Vec3, width, height float32) (x, y float32, ok bool) {
	clip := viewProjection.Mul4x1(point.Vec4(1))
	if clip[3] <= 1e-4 {
		return 0, 0, false
	}

	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	x = (ndcX + 1) / 2 * width
	y = (1 - ndcY) / 2 * height
	return x, y, true
}
