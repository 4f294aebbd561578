package linalg

import (
	"errors"
	"math"
)

// NoAngle is what AngleBetween yields when one of the vectors has zero length.
const NoAngle = -1.0

// ErrDegenerate is returned when an operation needs a non-zero vector.
var ErrDegenerate = errors.New("linalg: zero-length vector")

// Angle returns the angle in radians between v1 and v2, in [0, pi].
func Angle(v1, v2 Vec3) (float64, error) {
	l := v1.Len() * v2.Len()
	if l == 0 {
		return 0, ErrDegenerate
	}
	c := v1.Dot(v2) / l
	// rounding can push the cosine slightly outside [-1, 1]
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c), nil
}

// AngleBetween is Angle with the error folded into the NoAngle sentinel.
func AngleBetween(v1, v2 Vec3) float64 {
	a, err := Angle(v1, v2)
	if err != nil {
		return NoAngle
	}
	return a
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// XAxisRot rotates v about the X axis through the origin by deg degrees.
func XAxisRot(v Vec3, deg float64) Vec3 {
	s, c := math.Sincos(DegToRad(deg))
	return Vec3{
		v[0],
		v[1]*c - v[2]*s,
		v[1]*s + v[2]*c,
	}
}

// YAxisRot rotates v about the Y axis through the origin by deg degrees.
func YAxisRot(v Vec3, deg float64) Vec3 {
	s, c := math.Sincos(DegToRad(deg))
	return Vec3{
		v[0]*c + v[2]*s,
		v[1],
		-v[0]*s + v[2]*c,
	}
}

// ZAxisRot rotates v about the Z axis through the origin by deg degrees.
func ZAxisRot(v Vec3, deg float64) Vec3 {
	s, c := math.Sincos(DegToRad(deg))
	return Vec3{
		v[0]*c - v[1]*s,
		v[0]*s + v[1]*c,
		v[2],
	}
}

// AxisLine is an infinite line given by a point and a direction.
// A zero direction describes no axis at all; rotating about it is a no-op.
type AxisLine struct {
	Point Vec3
	Dir   Vec3
}

// Degenerate reports whether the direction has zero length.
func (a AxisLine) Degenerate() bool { return a.Dir.Len() == 0 }
