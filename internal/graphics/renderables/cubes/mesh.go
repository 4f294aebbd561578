package cubes

// Mesh identifies one of the two demo shapes.
type Mesh int

const (
	MeshPyramid Mesh = iota
	MeshCube
	meshCount
)

func (m Mesh) String() string {
	switch m {
	case MeshPyramid:
		return "pyramid"
	case MeshCube:
		return "cube"
	}
	return "unknown"
}

// Geometry is an indexed triangle list with three floats per vertex.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount is len(Vertices)/3.
func (g Geometry) VertexCount() int { return len(g.Vertices) / 3 }

var geometries = [meshCount]Geometry{
	MeshPyramid: {
		Vertices: []float32{
			0.0, 0.43, 0.0,
			-0.5, -0.43, -0.5,
			0.5, -0.43, -0.5,
			0.0, -0.43, 0.5,
		},
		Indices: []uint32{3, 1, 2, 0, 1, 2, 0, 3, 1, 0, 2, 3},
	},
	MeshCube: {
		Vertices: []float32{
			0.5, 0.5, 0.5,
			0.5, 0.5, -0.5,
			-0.5, 0.5, -0.5,
			-0.5, 0.5, 0.5,
			0.5, -0.5, 0.5,
			0.5, -0.5, -0.5,
			-0.5, -0.5, -0.5,
			-0.5, -0.5, 0.5,
		},
		Indices: []uint32{
			0, 1, 3, 1, 2, 3, 1, 5, 2, 5, 6, 2, 4, 5, 0, 5, 1, 0,
			3, 2, 7, 2, 6, 7, 4, 0, 7, 0, 3, 7, 5, 4, 6, 4, 7, 6,
		},
	},
}

// GeometryOf returns the shared geometry of m.
func GeometryOf(m Mesh) Geometry { return geometries[m] }

// Colours holds one RGB triple per vertex for up to eight vertices.
type Colours [24]float32

func solid(r, g, b float32) Colours {
	var c Colours
	for i := 0; i < 8; i++ {
		c[i*3], c[i*3+1], c[i*3+2] = r, g, b
	}
	return c
}

var (
	Black   = solid(0, 0, 0)
	Blue    = solid(0, 0, 1)
	Green   = solid(0, 1, 0)
	Cyan    = solid(0, 1, 1)
	Red     = solid(1, 0, 0)
	Magenta = solid(1, 0, 1)
	Yellow  = solid(1, 1, 0)
	White   = solid(1, 1, 1)

	// Rainbow gives each vertex a different corner of the RGB cube.
	Rainbow = Colours{0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1}
)
