package game

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shinage/internal/camera"
	"shinage/internal/config"
	"shinage/internal/graphics/renderables/cubes"
	"shinage/internal/graphics/renderables/gizmo"
	"shinage/internal/graphics/renderables/hud"
	"shinage/internal/graphics/renderer"
	"shinage/internal/input"
	"shinage/internal/profiling"
	"shinage/internal/transform"
)

// Session owns the matrix stacks, the camera controller and the renderables.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Cubes    *cubes.Cubes
	HUD      *hud.HUD

	Matrices *transform.Context
	Camera   *camera.FreeFly

	pointerGrabbed bool
	frames         uint64
}

func NewSession(window *glfw.Window) (*Session, error) {
	cubesRenderer := cubes.NewCubes()
	hudRenderer := hud.NewHUD()

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(width, height, cubesRenderer, gizmo.NewGizmo(), hudRenderer)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Window:   window,
		Renderer: r,
		Cubes:    cubesRenderer,
		HUD:      hudRenderer,
		Matrices: transform.NewContext(config.GetStackDepth()),
		Camera:   camera.NewFreeFly(aspect(width, height)),
	}
	if err := s.Camera.Reset(s.Matrices); err != nil {
		r.Dispose()
		return nil, fmt.Errorf("reset camera: %w", err)
	}
	return s, nil
}

func aspect(width, height int) float64 {
	if height <= 0 {
		return 1
	}
	return float64(width) / float64(height)
}

// Update applies one frame of input. It reports whether the user asked to quit.
func (s *Session) Update(dt float64, im *input.Manager) bool {
	defer profiling.Track("session.Update")()

	if im.JustPressed(input.ActionQuit) {
		return true
	}
	if im.JustPressed(input.ActionTogglePointer) {
		s.setPointerGrabbed(!s.pointerGrabbed, im)
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.HUD.ToggleProfiling()
	}
	if im.JustPressed(input.ActionToggleScene) {
		s.Cubes.ToggleScene()
	}
	if im.JustPressed(input.ActionDumpVertices) {
		s.Cubes.RequestVertexDump()
	}

	intent := im.CameraIntent(s.pointerGrabbed)
	if err := s.Camera.Update(s.Matrices, intent, dt); err != nil {
		log.Printf("camera update: %v", err)
	}
	if intent.Reset {
		log.Printf("Reset in frame %d", s.frames)
	}
	return false
}

func (s *Session) setPointerGrabbed(grabbed bool, im *input.Manager) {
	s.pointerGrabbed = grabbed
	if grabbed {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	im.ResetCursor()
}

func (s *Session) Render(dt float64) {
	s.frames++
	s.Matrices.SetMat(transform.View)
	pos, ok := camera.Position(s.Matrices)
	s.Renderer.Render(renderer.RenderContext{
		Matrices: s.Matrices,
		DT:       dt,
		Camera: renderer.CameraStatus{
			Position:    pos,
			HasPosition: ok,
			YawLocked:   s.Camera.YawLocked,
			PointerGrab: s.pointerGrabbed,
		},
	})
}

// Resize updates the viewport and the projection for a new window size.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Renderer.SetViewport(width, height)
	s.Camera.Reproject(s.Matrices, aspect(width, height))
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Renderer = nil
}
