package camera

import (
	"log"

	"shinage/internal/config"
	"shinage/internal/linalg"
	"shinage/internal/transform"
)

// Intent is one frame of camera input, already mapped from devices.
type Intent struct {
	// Look is cursor travel in pixels: x to the right, y downwards.
	Look linalg.Vec2
	// Move holds right-left, up-down and forward-back, each in [-1, 1].
	Move linalg.Vec3
	// Roll is right shoulder minus left shoulder.
	Roll float64

	Reset          bool
	ToggleYawLock  bool
	ReportPosition bool
}

// FreeFly turns Intents into View stack updates.
type FreeFly struct {
	// YawLocked keeps yaw on the world Y axis instead of the camera's own.
	YawLocked bool
	Aspect    float64

	// Pose used by Reset.
	Eye, Target, Up linalg.Vec3

	// OnReport receives the camera position when an Intent asks for it.
	OnReport func(linalg.Vec3)
}

// NewFreeFly returns a controller that resets to the origin seen from (0,0,-1).
func NewFreeFly(aspect float64) *FreeFly {
	return &FreeFly{
		Aspect: aspect,
		Eye:    linalg.Vec3{0, 0, -1},
		Target: linalg.Vec3{0, 0, 0},
		Up:     linalg.Up,
		OnReport: func(p linalg.Vec3) {
			log.Printf("Camera position %.4f %.4f %.4f", p[0], p[1], p[2])
		},
	}
}

// Reset rebuilds every stack, installs the perspective projection and the
// reset pose, and leaves View selected.
func (f *FreeFly) Reset(c *transform.Context) error {
	c.Build()
	near, far := config.GetClipPlanes()
	c.SetMat(transform.Projection)
	Perspective(c, config.GetFOV(), f.Aspect, near, far)
	c.SetMat(transform.View)
	return LookAt(c, f.Eye, f.Target, f.Up)
}

// Reproject replaces the Projection top after an aspect or FOV change.
// The previous selection is restored.
func (f *FreeFly) Reproject(c *transform.Context, aspect float64) {
	f.Aspect = aspect
	prev, hadPrev := c.Active()
	near, far := config.GetClipPlanes()
	c.SetMat(transform.Projection)
	Perspective(c, config.GetFOV(), aspect, near, far)
	if hadPrev {
		c.SetMat(prev)
	}
}

// Update applies one frame of input. dt is in seconds.
func (f *FreeFly) Update(c *transform.Context, in Intent, dt float64) error {
	if in.ToggleYawLock {
		f.YawLocked = !f.YawLocked
	}
	if in.Reset {
		if err := f.Reset(c); err != nil {
			return err
		}
	}

	sens := config.GetMouseSensitivity()
	if dx := in.Look.X(); dx != 0 {
		c.SetMat(transform.View)
		if f.YawLocked {
			AddYawWorldAxis(c, dx*sens)
		} else {
			AddYaw(c, dx*sens)
		}
	}
	if dy := in.Look.Y(); dy != 0 {
		c.SetMat(transform.View)
		AddPitch(c, dy*sens)
	}
	if in.Move != (linalg.Vec3{}) {
		c.SetMat(transform.View)
		step := config.GetMoveSpeed() * dt
		MoveCamera(c, in.Move[0]*step, in.Move[1]*step, in.Move[2]*step)
	}
	if in.Roll != 0 {
		c.SetMat(transform.View)
		AddRoll(c, in.Roll*config.GetRollSpeed()*dt)
	}

	if in.ReportPosition && f.OnReport != nil {
		c.SetMat(transform.View)
		if p, ok := Position(c); ok {
			f.OnReport(p)
		}
	}
	return nil
}
