// Package cubes draws the demo scenes through the Model, View and Projection
// stacks.
package cubes

import (
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shinage/internal/graphics"
	renderer "shinage/internal/graphics/renderer"
	"shinage/internal/profiling"
	"shinage/internal/transform"
)

const ringSegments = 8

type meshBuffers struct {
	vao, positions, colours, elements uint32
	indexCount                        int32
}

// Cubes renders one of the demo scenes each frame.
type Cubes struct {
	shader *graphics.Shader
	meshes [meshCount]meshBuffers

	scenes []Scene
	active int

	dumpRequested bool
}

// NewCubes starts on the static rings scene.
func NewCubes() *Cubes {
	return &Cubes{
		scenes: []Scene{&StaticRings{Segments: ringSegments}, NewBouncing()},
	}
}

func (c *Cubes) Init() error {
	var err error
	c.shader, err = graphics.NewShader(
		filepath.Join(graphics.ShadersDir, graphics.ColorVertShader),
		filepath.Join(graphics.ShadersDir, graphics.ColorFragShader),
	)
	if err != nil {
		return err
	}
	for m := Mesh(0); m < meshCount; m++ {
		c.meshes[m] = uploadMesh(GeometryOf(m))
	}
	return nil
}

func uploadMesh(g Geometry) meshBuffers {
	var b meshBuffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &b.colours)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.colours)
	gl.BufferData(gl.ARRAY_BUFFER, g.VertexCount()*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &b.elements)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.elements)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	b.indexCount = int32(len(g.Indices))

	gl.BindVertexArray(0)
	return b
}

// ToggleScene switches to the next scene.
func (c *Cubes) ToggleScene() {
	c.active = (c.active + 1) % len(c.scenes)
	log.Printf("Scene: %s", c.scenes[c.active].Name())
}

// RequestVertexDump logs the CPU-projected vertices of the next cube drawn.
func (c *Cubes) RequestVertexDump() {
	c.dumpRequested = true
}

func (c *Cubes) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.cubes")()

	mats := ctx.Matrices
	c.shader.Use()
	c.shader.SetMat4("viewMatrix", mats.Top(transform.View))
	c.shader.SetMat4("projMatrix", mats.Top(transform.Projection))

	c.scenes[c.active].Build(mats, func(dc DrawCall) {
		c.draw(dc)
		if c.dumpRequested && dc.Mesh == MeshCube {
			c.dumpRequested = false
			traces := mats.ProjectVertices(GeometryOf(dc.Mesh).Vertices, 3)
			log.Printf("Vertex positions in frame %d\n%s", ctx.Frame, transform.FormatTraces(traces))
		}
	})
	gl.BindVertexArray(0)
}

func (c *Cubes) draw(dc DrawCall) {
	b := c.meshes[dc.Mesh]
	c.shader.SetMat4("modelMatrix", dc.Model)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.colours)
	n := GeometryOf(dc.Mesh).VertexCount() * 3
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(dc.Colours[:n]))
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (c *Cubes) SetViewport(width, height int) {}

func (c *Cubes) Dispose() {
	for i := range c.meshes {
		b := &c.meshes[i]
		if b.vao == 0 {
			continue
		}
		gl.DeleteBuffers(1, &b.positions)
		gl.DeleteBuffers(1, &b.colours)
		gl.DeleteBuffers(1, &b.elements)
		gl.DeleteVertexArrays(1, &b.vao)
		*b = meshBuffers{}
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
