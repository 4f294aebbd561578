package cubes

import (
	"math"
	"testing"

	"shinage/internal/linalg"
	"shinage/internal/matstack"
	"shinage/internal/transform"
)

const eps = 1e-9

func collect(t *testing.T, s Scene, c *transform.Context) []DrawCall {
	t.Helper()
	var calls []DrawCall
	s.Build(c, func(dc DrawCall) { calls = append(calls, dc) })
	return calls
}

func newContext() *transform.Context {
	c := transform.NewContext(matstack.DefaultDepth)
	c.Build()
	return c
}

func TestStaticRings(t *testing.T) {
	c := newContext()
	calls := collect(t, &StaticRings{Segments: 8}, c)

	if len(calls) != 1+3*8 {
		t.Fatalf("Expected 25 draw calls, got %d", len(calls))
	}
	if calls[0].Mesh != MeshPyramid || calls[0].Colours != &Rainbow {
		t.Errorf("Expected rainbow pyramid first, got %v", calls[0].Mesh)
	}
	if p := calls[0].Model.Translation(); !p.ApproxEqual(linalg.Vec3{0, 0, -1}, eps) {
		t.Errorf("Expected pyramid at (0,0,-1), got %v", p)
	}

	// Each ring orbits the world origin in its own plane.
	checks := []struct {
		name   string
		colour *Colours
		plane  func(p linalg.Vec3) (fixed, r2 float64)
		fixed  float64
		r2     float64
	}{
		{"blue", &Blue, func(p linalg.Vec3) (float64, float64) { return p[2], p[0]*p[0] + p[1]*p[1] }, -1, 4},
		{"green", &Green, func(p linalg.Vec3) (float64, float64) { return p[1], p[0]*p[0] + p[2]*p[2] }, 0, 7.25},
		{"red", &Red, func(p linalg.Vec3) (float64, float64) { return p[0], p[1]*p[1] + p[2]*p[2] }, 0, 4},
	}
	for i, ck := range checks {
		for j := 0; j < 8; j++ {
			dc := calls[1+i*8+j]
			if dc.Mesh != MeshCube || dc.Colours != ck.colour {
				t.Fatalf("%s[%d]: unexpected mesh or colour", ck.name, j)
			}
			fixed, r2 := ck.plane(dc.Model.Translation())
			if math.Abs(fixed-ck.fixed) > 1e-7 || math.Abs(r2-ck.r2) > 1e-7 {
				t.Errorf("%s[%d]: position %v off its ring", ck.name, j, dc.Model.Translation())
			}
		}
	}

	// Neighbouring blue cubes are 45 degrees apart.
	a := calls[1].Model.Translation().Sub(linalg.Vec3{0, 0, -1})
	b := calls[2].Model.Translation().Sub(linalg.Vec3{0, 0, -1})
	if ang, err := linalg.Angle(a, b); err != nil || math.Abs(ang-math.Pi/4) > 1e-7 {
		t.Errorf("Expected 45 degrees between blue cubes, got %v (%v)", ang, err)
	}
}

func TestScenesRestoreStacks(t *testing.T) {
	for _, s := range []Scene{&StaticRings{Segments: 8}, NewBouncing()} {
		t.Run(s.Name(), func(t *testing.T) {
			c := newContext()
			c.SetMat(transform.Model)
			c.Translate(linalg.Vec3{1, 2, 3})
			before := c.Top(transform.Model)

			collect(t, s, c)

			if k, ok := c.Active(); !ok || k != transform.View {
				t.Errorf("Expected View selected after Build, got %v %v", k, ok)
			}
			if n := c.Stack(transform.Model).Len(); n != 1 {
				t.Errorf("Expected Model depth 1, got %d", n)
			}
			if c.Top(transform.Model) != before {
				t.Errorf("Expected Model top restored")
			}
		})
	}
}

func TestStaticRingsClampsSegments(t *testing.T) {
	calls := collect(t, &StaticRings{Segments: 0}, newContext())
	if len(calls) != 4 {
		t.Errorf("Expected one cube per ring, got %d calls", len(calls))
	}
}

func TestBouncing(t *testing.T) {
	b := NewBouncing()
	c := newContext()
	calls := collect(t, b, c)
	if len(calls) != 3 {
		t.Fatalf("Expected 3 cubes, got %d", len(calls))
	}
	for _, dc := range calls {
		if dc.Mesh != MeshCube {
			t.Errorf("Expected only cubes")
		}
	}
	// The satellites sit on opposite sides of the main cube.
	centre := calls[0].Model.Translation()
	s1 := calls[1].Model.Translation().Sub(centre)
	s2 := calls[2].Model.Translation().Sub(centre)
	if !s1.Add(s2).ApproxEqual(linalg.Vec3{}, 1e-7) {
		t.Errorf("Expected opposite satellites, got %v and %v", s1, s2)
	}
}

func TestBouncingOscillates(t *testing.T) {
	b := NewBouncing()
	lo, hi := b.scale, b.scale
	zlo, zhi := b.z, b.z
	for i := 0; i < 5000; i++ {
		b.advance()
		lo, hi = min(lo, b.scale), max(hi, b.scale)
		zlo, zhi = min(zlo, b.z), max(zhi, b.z)
		if math.Abs(b.spin) > 2*math.Pi {
			t.Fatalf("Spin escaped a full turn: %v", b.spin)
		}
	}
	if lo < 0.2474 || hi > 0.7526 {
		t.Errorf("Scale left its band: [%v, %v]", lo, hi)
	}
	if lo > 0.26 || hi < 0.74 {
		t.Errorf("Scale did not sweep its band: [%v, %v]", lo, hi)
	}
	if zlo < 0.4994 || zhi > 1.0006 {
		t.Errorf("Depth left its band: [%v, %v]", zlo, zhi)
	}
}

func TestGeometry(t *testing.T) {
	for m := Mesh(0); m < meshCount; m++ {
		g := GeometryOf(m)
		if len(g.Indices)%3 != 0 {
			t.Errorf("%v: index count %d not a triangle list", m, len(g.Indices))
		}
		for _, idx := range g.Indices {
			if int(idx) >= g.VertexCount() {
				t.Errorf("%v: index %d out of range", m, idx)
			}
		}
		if g.VertexCount()*3 > len(Colours{}) {
			t.Errorf("%v: more vertices than colour slots", m)
		}
	}
}
