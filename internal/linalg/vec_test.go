package linalg

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestAxisRotations(t *testing.T) {
	tests := []struct {
		name     string
		rot      func(Vec3, float64) Vec3
		in       Vec3
		deg      float64
		expected Vec3
	}{
		{"x", XAxisRot, Vec3{1, 1, 0}, 90, Vec3{1, 0, 1}},
		{"y", YAxisRot, Vec3{1, 1, 0}, 90, Vec3{0, 1, -1}},
		{"z", ZAxisRot, Vec3{1, 1, 0}, 90, Vec3{-1, 1, 0}},
		{"x full turn", XAxisRot, Vec3{2, -3, 4}, 360, Vec3{2, -3, 4}},
		{"z half turn", ZAxisRot, Vec3{1, 0, 5}, 180, Vec3{-1, 0, 5}},
	}

	for _, c := range tests {
		if r := c.rot(c.in, c.deg); !r.ApproxEqual(c.expected, eps) {
			t.Errorf("%s rotation of %v by %v: expected %v, got %v", c.name, c.in, c.deg, c.expected, r)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	if a := AngleBetween(Vec3{1, 0, 1}, Vec3{0, 1, 0}); math.Abs(a-math.Pi/2) > eps {
		t.Errorf("Expected pi/2, got %v", a)
	}
	if a := AngleBetween(Vec3{1, 0, 0}, Vec3{-2, 0, 0}); math.Abs(a-math.Pi) > eps {
		t.Errorf("Expected pi, got %v", a)
	}
	if a := AngleBetween(Vec3{1, 1, 1}, Vec3{3, 3, 3}); a != 0 && math.Abs(a) > 1e-7 {
		t.Errorf("Expected 0 for parallel vectors, got %v", a)
	}
	if a := AngleBetween(Vec3{}, Vec3{0, 1, 0}); a != NoAngle {
		t.Errorf("Expected sentinel %v for zero vector, got %v", NoAngle, a)
	}
	if _, err := Angle(Vec3{1, 0, 0}, Vec3{}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if !n.ApproxEqual(Vec3{0.6, 0, 0.8}, eps) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", n)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Expected zero vector to pass through, got %v", z)
	}
}

func TestVectorProducts(t *testing.T) {
	if c := XDir.Cross(YDir); c != ZDir {
		t.Errorf("Expected x cross y = z, got %v", c)
	}
	if c := YDir.Cross(XDir); c != ZDir.Neg() {
		t.Errorf("Expected y cross x = -z, got %v", c)
	}
	a, b := Vec3{1, 2, 3}, Vec3{4, -5, 6}
	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot 12, got %v", d)
	}
	if h := a.Mul(b); h != (Vec3{4, -10, 18}) {
		t.Errorf("Expected hadamard (4,-10,18), got %v", h)
	}
	if s := a.Add(b).Sub(b); s != a {
		t.Errorf("Expected add then sub to round trip, got %v", s)
	}
	if c := a.Cross(b); math.Abs(c.Dot(a)) > eps || math.Abs(c.Dot(b)) > eps {
		t.Errorf("Expected cross product orthogonal to both inputs, got %v", c)
	}
}

func TestNamedAndIndexedAccess(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	if v.X() != v[0] || v.Y() != v[1] || v.Z() != v[2] || v.W() != v[3] {
		t.Errorf("Named accessors disagree with indices: %v", v)
	}
	if v.Vec3() != (Vec3{1, 2, 3}) {
		t.Errorf("Expected xyz (1,2,3), got %v", v.Vec3())
	}
	if !NaNVec3.IsNaN() {
		t.Errorf("Expected NaNVec3 to report NaN")
	}
}
