package gizmo

import (
	"math"
	"testing"

	"shinage/internal/linalg"
)

func near(a float32, b float64) bool { return math.Abs(float64(a)-b) < 1e-6 }

// tip returns the screen position of the far end of axis i.
func tip(buf []float32, i int) (float32, float32) {
	o := (2*i + 1) * floatsPerVertex
	return buf[o], buf[o+1]
}

func TestTriadIdentityView(t *testing.T) {
	buf := triadLines(linalg.Identity, 1)
	if len(buf) != 6*floatsPerVertex {
		t.Fatalf("Expected 6 vertices, got %d floats", len(buf))
	}
	ox, oy := triadOrigin[0], triadOrigin[1]
	if x, y := tip(buf, 0); !near(x, ox+triadLength) || !near(y, oy) {
		t.Errorf("X axis tip at (%v,%v)", x, y)
	}
	if x, y := tip(buf, 1); !near(x, ox) || !near(y, oy+triadLength) {
		t.Errorf("Y axis tip at (%v,%v)", x, y)
	}
	// Z points at the viewer and collapses onto the origin.
	if x, y := tip(buf, 2); !near(x, ox) || !near(y, oy) {
		t.Errorf("Z axis tip at (%v,%v)", x, y)
	}
	// Colour follows position.
	if buf[3] != 1 || buf[4] != 0 || buf[5] != 0 {
		t.Errorf("Expected X axis red, got %v", buf[3:6])
	}
}

func TestTriadFollowsViewRotationOnly(t *testing.T) {
	// A quarter yaw turns world X into the screen's depth axis.
	view := linalg.RotationY(math.Pi / 2).Mul(linalg.TranslationMatrix(linalg.Vec3{5, -3, 9}))
	buf := triadLines(view, 2)
	ox, oy := triadOrigin[0], triadOrigin[1]
	if x, y := tip(buf, 0); !near(x, ox) || !near(y, oy) {
		t.Errorf("Expected X axis edge-on, tip at (%v,%v)", x, y)
	}
	// World Z now points along screen X, halved by the aspect.
	if x, y := tip(buf, 2); !near(x, ox+triadLength/2) || !near(y, oy) {
		t.Errorf("Z axis tip at (%v,%v)", x, y)
	}
}

func TestCrosshairAspect(t *testing.T) {
	buf := crosshairLines(2)
	if len(buf) != 4*floatsPerVertex {
		t.Fatalf("Expected 4 vertices, got %d floats", len(buf))
	}
	if !near(buf[0], -crosshairSize/2) || !near(buf[floatsPerVertex], crosshairSize/2) {
		t.Errorf("Expected horizontal arm scaled by aspect, got %v %v", buf[0], buf[floatsPerVertex])
	}
	if !near(buf[3*floatsPerVertex+1], crosshairSize) {
		t.Errorf("Expected vertical arm unscaled")
	}
	if got := crosshairLines(0); !near(got[0], -crosshairSize) {
		t.Errorf("Expected non-positive aspect treated as 1")
	}
}
