// Package hud draws the text overlay: frame rate, camera state and the
// optional profiling breakdown.
package hud

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"shinage/internal/graphics"
	renderer "shinage/internal/graphics/renderer"
	"shinage/internal/profiling"
)

const fontPixels = 24

var (
	white = mgl32.Vec3{1, 1, 1}
	amber = mgl32.Vec3{1, 0.75, 0.2}
)

// HUD implements renderer.Renderable.
type HUD struct {
	fontRenderer  *graphics.FontRenderer
	fps           *fpsCounter
	stats         frameStats
	showProfiling bool
	height        int
}

func NewHUD() *HUD {
	return &HUD{fps: newFPSCounter(), height: graphics.WinHeight}
}

func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(fontPixels)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	h.fontRenderer, err = graphics.NewFontRenderer(atlas)
	return err
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.hud")()

	fps := h.fps.add(ctx.Frame, ctx.DT)
	h.fontRenderer.Render(fps, 5, float32(h.height)-20, 0.5, white)

	h.fontRenderer.RenderLines(cameraLines(ctx.Camera), 5, 20, 16, 0.45, white)

	if h.showProfiling {
		h.fontRenderer.RenderLines(h.stats.lines(), 5, 60, 16, 0.4, amber)
	}
}

// cameraLines describes the camera for the top-left corner.
func cameraLines(s renderer.CameraStatus) []string {
	pos := "Pos: n/a"
	if s.HasPosition {
		pos = fmt.Sprintf("Pos: %.2f, %.2f, %.2f", s.Position[0], s.Position[1], s.Position[2])
	}
	yaw := "Yaw: local"
	if s.YawLocked {
		yaw = "Yaw: world"
	}
	pointer := "free"
	if s.PointerGrab {
		pointer = "grabbed"
	}
	return []string{pos, yaw + " | Pointer: " + pointer}
}

func (h *HUD) SetViewport(width, height int) {
	h.height = height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}
