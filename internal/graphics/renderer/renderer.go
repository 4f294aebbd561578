package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shinage/internal/profiling"
)

// Renderer clears the frame and drives each renderable in order.
type Renderer struct {
	renderables   []Renderable
	width, height int
	frame         uint64
}

// NewRenderer configures GL state and initialises rs in order.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Demo meshes are not consistently wound.
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{renderables: rs}
	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			// Unwind what was already initialised.
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rb, err)
		}
	}
	r.SetViewport(width, height)
	return r, nil
}

// Render draws one frame. ctx.Frame, Width and Height are filled in here.
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.08, 0.09, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.frame++
	ctx.Frame = r.frame
	ctx.Width, ctx.Height = r.width, r.height
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// SetViewport resizes the GL viewport and notifies every renderable.
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}

// Dispose releases renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
