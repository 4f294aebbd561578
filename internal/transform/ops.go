package transform

import "shinage/internal/linalg"

// Translated returns m * T(v). For camera transforms the caller negates z,
// see camera.MoveCamera.
func Translated(m linalg.Mat4, v linalg.Vec3) linalg.Mat4 {
	return m.Mul(linalg.TranslationMatrix(v))
}

// Scaled returns m * S(v).
func Scaled(m linalg.Mat4, v linalg.Vec3) linalg.Mat4 {
	return m.Mul(linalg.ScaleMatrix(v))
}

// Rotated composes m * T(-p) * Ry(-lon) * Rx(-lat) * Rz(angle) * Rx(lat) * Ry(lon) * T(p),
// where p is axis.Point and angle is in radians.
//
// Longitude is the unsigned angle from the XZ projection of the direction to Z,
// latitude the unsigned angle from the XY projection to X; a projection with no
// length counts as angle 0. Because both angles are unsigned the direction is
// not always carried onto +Z: Z and Y turn about themselves, but X is carried
// to -Z, so an X direction yields RotationX(-angle).
//
// The point left fixed is -axis.Point, not axis.Point.
//
// A zero direction leaves m unchanged.
func Rotated(m linalg.Mat4, axis linalg.AxisLine, angle float64) linalg.Mat4 {
	if axis.Degenerate() {
		return m
	}
	p, d := axis.Point, axis.Dir

	lon := linalg.AngleBetween(linalg.Vec3{d[0], 0, d[2]}, linalg.ZDir)
	if lon == linalg.NoAngle {
		lon = 0
	}
	lat := linalg.AngleBetween(linalg.Vec3{d[0], d[1], 0}, linalg.XDir)
	if lat == linalg.NoAngle {
		lat = 0
	}

	m = m.Mul(linalg.TranslationMatrix(p.Neg()))
	m = m.Mul(linalg.RotationY(-lon))
	m = m.Mul(linalg.RotationX(-lat))
	m = m.Mul(linalg.RotationZ(angle))
	m = m.Mul(linalg.RotationX(lat))
	m = m.Mul(linalg.RotationY(lon))
	m = m.Mul(linalg.TranslationMatrix(p))
	return m
}
