package gm

import "math"

// Rad is an angle in radians.
type Rad float32

func (r Rad) Degrees() float32 {
	return float32(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

func DegToRad(deg float32) Rad {
	return Rad(math.Pi / 180 * deg)
}
