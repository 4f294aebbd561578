package renderer

import (
	"shinage/internal/linalg"
	"shinage/internal/transform"
)

// CameraStatus is what the overlays show about the camera.
type CameraStatus struct {
	Position    linalg.Vec3
	HasPosition bool
	YawLocked   bool
	PointerGrab bool
}

// RenderContext is shared by every renderable for one frame.
type RenderContext struct {
	// Matrices holds the Model, View and Projection stacks. Renderables
	// select Model for their own transforms and must leave View selected.
	Matrices *transform.Context
	Camera   CameraStatus
	DT       float64
	Frame    uint64
	Width    int
	Height   int
}

// Renderable is the lifecycle every scene feature implements.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
