// Package camera builds view and projection matrices and applies first-person
// camera motion to the selected stack of a transform.Context.
//
// Matrices are row major and composed left to right: an incremental rotation
// multiplied on the left of a view matrix happens in the camera's own frame,
// while factors multiplied on the right act in world space.
package camera

import (
	"errors"
	"math"

	"shinage/internal/linalg"
	"shinage/internal/transform"
)

// ErrDegenerateBasis is returned by LookAt when eye and target coincide or up is
// parallel to the viewing direction.
var ErrDegenerateBasis = errors.New("camera: look-at basis is degenerate")

// LookAtMatrix builds a world-to-camera matrix for an eye looking at target.
func LookAtMatrix(eye, target, up linalg.Vec3) (linalg.Mat4, error) {
	f := target.Sub(eye)
	if f.Len() == 0 {
		return linalg.Identity, ErrDegenerateBasis
	}
	f = f.Normalize()
	s := f.Cross(up.Normalize())
	if s.Len() < 1e-12 {
		return linalg.Identity, ErrDegenerateBasis
	}
	s = s.Normalize()
	u := s.Cross(f)

	return linalg.Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}, nil
}

// PerspectiveMatrix builds a right-handed projection; fovY is in radians and the
// w division happens on the GPU.
func PerspectiveMatrix(fovY, aspect, near, far float64) linalg.Mat4 {
	t := math.Tan(fovY * 0.5)
	zRange := near - far
	return linalg.Mat4{
		1 / (t * aspect), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, (far + near) / zRange, 2 * far * near / zRange,
		0, 0, -1, 0,
	}
}

// AddedPitch rotates m about its own X axis.
func AddedPitch(m linalg.Mat4, angle float64) linalg.Mat4 {
	return linalg.RotationX(angle).Mul(m)
}

// AddedYaw rotates m about its own Y axis.
func AddedYaw(m linalg.Mat4, angle float64) linalg.Mat4 {
	return linalg.RotationY(angle).Mul(m)
}

// AddedRoll rotates m about its own Z axis.
func AddedRoll(m linalg.Mat4, angle float64) linalg.Mat4 {
	return linalg.RotationZ(angle).Mul(m)
}

// AddedYawWorldAxis rotates the view m about the world Y axis through the camera
// position, so yaw never picks up roll from the current pitch.
func AddedYawWorldAxis(m linalg.Mat4, angle float64) linalg.Mat4 {
	pos := linalg.PositionFromMatrix(m)
	m = m.Mul(linalg.TranslationMatrix(pos))
	m = m.Mul(linalg.RotationY(angle))
	m = m.Mul(linalg.TranslationMatrix(pos.Neg()))
	return m
}

// RotatedSelf rotates m about axis after carrying the axis into m's frame.
func RotatedSelf(m linalg.Mat4, axis linalg.Vec3, angle float64) linalg.Mat4 {
	dir := m.MulVec4(axis.Vec4(0)).Vec3()
	return transform.Rotated(m, linalg.AxisLine{Dir: dir}, angle)
}

// LookAt replaces the selected top (normally View) with a look-at matrix.
// On a degenerate basis the stack is left alone.
func LookAt(c *transform.Context, eye, target, up linalg.Vec3) error {
	m, err := LookAtMatrix(eye, target, up)
	if err != nil {
		return err
	}
	c.Load(m)
	return nil
}

// Perspective replaces the selected top (normally Projection) with a perspective matrix.
func Perspective(c *transform.Context, fovY, aspect, near, far float64) {
	c.Load(PerspectiveMatrix(fovY, aspect, near, far))
}

func AddPitch(c *transform.Context, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return AddedPitch(m, angle) })
}

func AddYaw(c *transform.Context, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return AddedYaw(m, angle) })
}

func AddRoll(c *transform.Context, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return AddedRoll(m, angle) })
}

func AddYawWorldAxis(c *transform.Context, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return AddedYawWorldAxis(m, angle) })
}

func RotateSelf(c *transform.Context, axis linalg.Vec3, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return RotatedSelf(m, axis, angle) })
}

// MoveCamera translates the selected top. The view looks down -Z, so z is
// negated: a positive z moves forward.
func MoveCamera(c *transform.Context, x, y, z float64) {
	c.Translate(linalg.Vec3{x, y, -z})
}

// Position returns the world position of the camera described by the selected
// top. With nothing selected, or a singular top, it returns NaNVec3 and false.
func Position(c *transform.Context) (linalg.Vec3, bool) {
	m, ok := c.Peek()
	if !ok {
		return linalg.NaNVec3, false
	}
	inv, err := m.TryInverse(linalg.Adjugate)
	if err != nil {
		return linalg.NaNVec3, false
	}
	return inv.Translation(), true
}
