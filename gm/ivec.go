package gm

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// IVec3 is an integer 3d vector, usually the index of a cell within a grid.
type IVec3 struct {
	X, Y, Z int32
}

func IVecOf(x, y, z int32) IVec3 {
	return IVec3{X: x, Y: y, Z: z}
}

func (v IVec3) Add(other IVec3) IVec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v IVec3) Sub(other IVec3) IVec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// Vec3 converts the integer vector back into continuous space.
func (v IVec3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v IVec3) String() string {
	return fmt.Sprintf("ivec(x=%d, y=%d, z=%d)", v.X, v.Y, v.Z)
}

// Rounding describes how a continuous coordinate is mapped onto an integer grid coordinate.
type Rounding uint8

const (
	// RoundHalfUp rounds to the nearest integer, ties towards positive infinity.
	// This maps 2.5 to 3 and -0.5 to 0.
	RoundHalfUp Rounding = iota

	// RoundHalfEven rounds to the nearest integer, ties to the nearest even integer.
	RoundHalfEven

	// Truncate drops the fractional part, rounding towards zero.
	Truncate
)

var roundingNames = map[Rounding]string{
	RoundHalfUp:   "half-up",
	RoundHalfEven: "half-even",
	Truncate:      "truncate",
}

// ParseRounding parses the textual name of a Rounding.
// An empty name yields RoundHalfUp.
func ParseRounding(name string) (Rounding, error) {
	if name == "" {
		return RoundHalfUp, nil
	}

	for rounding, rName := range roundingNames {
		if rName == name {
			return rounding, nil
		}
	}

	return 0, fmt.Errorf("unknown rounding %q", name)
}

func (r Rounding) String() string {
	name, ok := roundingNames[r]
	if !ok {
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}

	return name
}

// Round rounds a single value.
func (r Rounding) Round(value float32) int32 {
	v := float64(value)

	switch r {
	case RoundHalfUp:
		return int32(math.Floor(v + 0.5))

	case RoundHalfEven:
		return int32(math.RoundToEven(v))

	case Truncate:
		return int32(math.Trunc(v))

	default:
		panic(fmt.Sprintf("invalid rounding: %d", uint8(r)))
	}
}

// Vec3 rounds each component of the given vector.
func (r Rounding) Vec3(vec mgl32.Vec3) IVec3 {
	return IVec3{
		X: r.Round(vec[0]),
		Y: r.Round(vec[1]),
		Z: r.Round(vec[2]),
	}
}
