package cubes

import (
	"math"

	"shinage/internal/linalg"
	"shinage/internal/transform"
)

// DrawCall is one mesh to draw with the Model top at the time it was emitted.
type DrawCall struct {
	Mesh    Mesh
	Colours *Colours
	Model   linalg.Mat4
}

// Scene composes Model transforms on c and emits a DrawCall per mesh.
// Build leaves the Model stack as it found it and View selected.
type Scene interface {
	Name() string
	Build(c *transform.Context, emit func(DrawCall))
}

func draw(c *transform.Context, emit func(DrawCall), m Mesh, col *Colours) {
	emit(DrawCall{Mesh: m, Colours: col, Model: c.Top(transform.Model)})
}

// StaticRings is a pyramid at (0,0,-1) with three rings of cubes around it,
// one ring per cardinal axis.
type StaticRings struct {
	Segments int
}

func (s *StaticRings) Name() string { return "static rings" }

type ring struct {
	axis   linalg.Vec3
	offset linalg.Vec3
	colour *Colours
}

var rings = []ring{
	{axis: linalg.ZDir, offset: linalg.Vec3{0, 2, 0}, colour: &Blue},
	{axis: linalg.YDir, offset: linalg.Vec3{2.5, 0, 0}, colour: &Green},
	{axis: linalg.XDir, offset: linalg.Vec3{0, 0, 3}, colour: &Red},
}

func (s *StaticRings) Build(c *transform.Context, emit func(DrawCall)) {
	segments := max(s.Segments, 1)
	c.SetMat(transform.Model)
	c.PushMatrix()

	c.Translate(linalg.Vec3{0, 0, -1})
	c.Scale(linalg.Vec3{0.1, 0.1, 0.1})
	draw(c, emit, MeshPyramid, &Rainbow)
	c.Scale(linalg.Vec3{10, 10, 10})

	step := 2 * math.Pi / float64(segments)
	for _, r := range rings {
		axis := linalg.AxisLine{Point: linalg.Vec3{0, 0, -1}, Dir: r.axis}
		for i := 0; i < segments; i++ {
			c.PushMatrix()
			c.Translate(r.offset)
			c.Scale(linalg.Vec3{0.3, 0.3, 0.3})
			draw(c, emit, MeshCube, r.colour)
			c.PopMatrix()
			c.Rotate(axis, step)
		}
	}

	c.PopMatrix()
	c.SetMat(transform.View)
}

// Bouncing is a pulsing, spinning cube with two satellites on opposite
// sides. State advances one step per Build.
type Bouncing struct {
	scale, scaleDelta float64
	z, zDelta         float64
	spin, spinDelta   float64
}

func NewBouncing() *Bouncing {
	return &Bouncing{
		scale: 0.5, scaleDelta: -0.0025,
		z: 0.75, zDelta: -0.0005,
		spin: 0.75, spinDelta: -0.025,
	}
}

func (b *Bouncing) Name() string { return "bouncing cube" }

// advance steps the animation; each value reverses at its bounds.
func (b *Bouncing) advance() {
	b.scale += b.scaleDelta
	if b.scale < 0.25 || b.scale > 0.75 {
		b.scaleDelta = -b.scaleDelta
	}
	b.z += b.zDelta
	if b.z < 0.5 || b.z > 1.0 {
		b.zDelta = -b.zDelta
	}
	b.spin += b.spinDelta
	if b.spin > 2*math.Pi || b.spin < -2*math.Pi {
		b.spin = 0
	}
}

func (b *Bouncing) Build(c *transform.Context, emit func(DrawCall)) {
	b.advance()

	scale := linalg.Vec3{b.scale, b.scale, b.scale}
	spinAxis := linalg.AxisLine{Dir: linalg.Vec3{1, 0.75, 1}}
	satellite := func(axis linalg.AxisLine) {
		c.PushMatrix()
		c.Scale(scale)
		c.Translate(linalg.Vec3{0, 2, 0})
		c.Rotate(axis, b.spin)
		draw(c, emit, MeshCube, &Rainbow)
		c.PopMatrix()
	}

	c.SetMat(transform.Model)
	c.PushMatrix()
	c.Scale(scale)
	c.Translate(linalg.Vec3{0, 0, b.z})
	c.Rotate(spinAxis, b.spin)
	draw(c, emit, MeshCube, &Rainbow)

	satellite(spinAxis)
	// The opposite satellite spins about Z.
	flip := linalg.AxisLine{Dir: linalg.ZDir}
	c.Rotate(flip, math.Pi)
	satellite(flip)

	c.PopMatrix()
	c.SetMat(transform.View)
}
