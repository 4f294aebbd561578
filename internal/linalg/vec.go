package linalg

import "math"

// Vec2 is a 2-component vector. Components are reachable by index or by name.
type Vec2 [2]float64

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

// Vec3 is a 3-component vector.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Vec4 is a 4-component vector, usually a homogeneous point (w=1) or direction (w=0).
type Vec4 [4]float64

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

// Cardinal unit directions.
var (
	XDir = Vec3{1, 0, 0}
	YDir = Vec3{0, 1, 0}
	ZDir = Vec3{0, 0, 1}
	Up   = YDir
)

// NaNVec3 is returned where a position cannot be computed.
var NaNVec3 = Vec3{math.NaN(), math.NaN(), math.NaN()}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Mul is the component-wise (Hadamard) product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v[0], -v[1], -v[2]} }
func (v Vec3) Dot(o Vec3) float64   { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the right-handed cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector in the direction of v.
// A zero-length vector is returned unchanged, so the result is not always unit length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l <= 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Vec4 extends v with the given w component.
func (v Vec3) Vec4(w float64) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

// ApproxEqual compares component-wise with an absolute tolerance.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

func (v Vec4) Dot(o Vec4) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

func (v Vec4) ApproxEqual(o Vec4, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
