// Package gizmo draws screen-space helpers: a crosshair while the pointer is
// grabbed and a triad showing the world axes as the camera sees them.
package gizmo

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shinage/internal/graphics"
	renderer "shinage/internal/graphics/renderer"
	"shinage/internal/linalg"
	"shinage/internal/profiling"
	"shinage/internal/transform"
)

const (
	crosshairSize = 0.02
	triadLength   = 0.1
)

// triadOrigin is the triad centre in normalised device coordinates.
var triadOrigin = linalg.Vec2{-0.85, -0.8}

var axisColours = [3]linalg.Vec3{{1, 0, 0}, {0, 1, 0}, {0.3, 0.5, 1}}

// floatsPerVertex is position (3) then colour (3).
const floatsPerVertex = 6

func appendVertex(buf []float32, x, y float64, c linalg.Vec3) []float32 {
	return append(buf, float32(x), float32(y), 0, float32(c[0]), float32(c[1]), float32(c[2]))
}

// crosshairLines returns two line segments centred on the screen, with the
// horizontal arm corrected for aspect.
func crosshairLines(aspect float64) []float32 {
	if aspect <= 0 {
		aspect = 1
	}
	w := linalg.Vec3{1, 1, 1}
	sx := crosshairSize / aspect
	buf := make([]float32, 0, 4*floatsPerVertex)
	buf = appendVertex(buf, -sx, 0, w)
	buf = appendVertex(buf, sx, 0, w)
	buf = appendVertex(buf, 0, -crosshairSize, w)
	buf = appendVertex(buf, 0, crosshairSize, w)
	return buf
}

// triadLines returns one segment per world axis. Each is the axis carried
// into camera space by the rotation part of view, projected onto the screen
// plane and scaled by triadLength.
func triadLines(view linalg.Mat4, aspect float64) []float32 {
	if aspect <= 0 {
		aspect = 1
	}
	buf := make([]float32, 0, 6*floatsPerVertex)
	axes := [3]linalg.Vec3{linalg.XDir, linalg.YDir, linalg.ZDir}
	for i, a := range axes {
		d := view.MulVec4(a.Vec4(0))
		x := triadOrigin[0] + d[0]*triadLength/aspect
		y := triadOrigin[1] + d[1]*triadLength
		buf = appendVertex(buf, triadOrigin[0], triadOrigin[1], axisColours[i])
		buf = appendVertex(buf, x, y, axisColours[i])
	}
	return buf
}

// Gizmo implements renderer.Renderable.
type Gizmo struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	aspect float64
}

func NewGizmo() *Gizmo {
	return &Gizmo{aspect: float64(graphics.WinWidth) / graphics.WinHeight}
}

func (g *Gizmo) Init() error {
	var err error
	g.shader, err = graphics.NewShader(
		filepath.Join(graphics.ShadersDir, graphics.ColorVertShader),
		filepath.Join(graphics.ShadersDir, graphics.ColorFragShader),
	)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 10*floatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	return nil
}

func (g *Gizmo) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.gizmo")()

	verts := triadLines(ctx.Matrices.Top(transform.View), g.aspect)
	if ctx.Camera.PointerGrab {
		verts = append(verts, crosshairLines(g.aspect)...)
	}

	gl.Disable(gl.DEPTH_TEST)
	g.shader.Use()
	g.shader.SetMat4("modelMatrix", linalg.Identity)
	g.shader.SetMat4("viewMatrix", linalg.Identity)
	g.shader.SetMat4("projMatrix", linalg.Identity)

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/floatsPerVertex))
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (g *Gizmo) SetViewport(width, height int) {
	if height > 0 {
		g.aspect = float64(width) / float64(height)
	}
}

func (g *Gizmo) Dispose() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}
