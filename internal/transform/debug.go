package transform

import (
	"fmt"
	"strings"

	"shinage/internal/linalg"
)

// VertexTrace follows one vertex through every stage of the pipeline.
type VertexTrace struct {
	Object, World, Camera, Clip, NDC linalg.Vec4
}

// ProjectVertices runs flat vertex data with dims components per vertex through the
// current Model, View and Projection tops on the CPU. Missing components are filled
// the way GLSL fills a partial vec4: zeros, then w=1.
func (c *Context) ProjectVertices(vertices []float32, dims int) []VertexTrace {
	if dims < 1 || dims > 4 {
		return nil
	}
	model, view, proj := c.Top(Model), c.Top(View), c.Top(Projection)

	n := len(vertices) / dims
	out := make([]VertexTrace, 0, n)
	for i := 0; i < n; i++ {
		v := linalg.Vec4{0, 0, 0, 1}
		for j := 0; j < dims; j++ {
			v[j] = float64(vertices[i*dims+j])
		}
		tr := VertexTrace{Object: v}
		tr.World = model.MulVec4(tr.Object)
		tr.Camera = view.MulVec4(tr.World)
		tr.Clip = proj.MulVec4(tr.Camera)
		tr.NDC = tr.Clip
		if w := tr.Clip.W(); w != 0 {
			for j := range tr.NDC {
				tr.NDC[j] /= w
			}
		}
		out = append(out, tr)
	}
	return out
}

// FormatTraces renders traces one stage per block, for log output.
func FormatTraces(traces []VertexTrace) string {
	var b strings.Builder
	stages := []struct {
		name string
		get  func(VertexTrace) linalg.Vec4
	}{
		{"OBJECT SPACE", func(t VertexTrace) linalg.Vec4 { return t.Object }},
		{"WORLD SPACE", func(t VertexTrace) linalg.Vec4 { return t.World }},
		{"CAMERA SPACE", func(t VertexTrace) linalg.Vec4 { return t.Camera }},
		{"CLIP SPACE", func(t VertexTrace) linalg.Vec4 { return t.Clip }},
		{"NDC (PERSPECTIVE DIVISION)", func(t VertexTrace) linalg.Vec4 { return t.NDC }},
	}
	for _, s := range stages {
		fmt.Fprintf(&b, "%s:\n", s.name)
		for i, t := range traces {
			v := s.get(t)
			fmt.Fprintf(&b, "  [%d] %8.4f %8.4f %8.4f %8.4f\n", i, v[0], v[1], v[2], v[3])
		}
	}
	return b.String()
}
