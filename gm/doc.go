// Package gm (stands for geometry math) provides the geometry primitives used by the
// occlusion grid and the shadowcaster.
//
// It includes an integer grid coordinate IVec3 together with the Rounding used to derive
// it from a continuous position, an axis aligned rectangle Rect with rectangle subtraction,
// one dimensional Interval values and a Plane to lift planar coordinates into 3d space.
//
// There is also a type named Rad to represent angle values in radian.
// Continuous 3d vectors use mgl32.Vec3.
package gm
