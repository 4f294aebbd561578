package hud

import (
	"testing"
	"time"

	renderer "shinage/internal/graphics/renderer"
	"shinage/internal/linalg"
	"shinage/internal/profiling"
)

func TestFPSCounterUpdatesEveryWindow(t *testing.T) {
	f := newFPSCounter()
	var text string
	for frame := uint64(1); frame < fpsWindow; frame++ {
		text = f.add(frame, 0.02)
	}
	if text != "0 FPS (0 ms)" {
		t.Errorf("Expected initial text before the window fills, got %q", text)
	}
	text = f.add(fpsWindow, 0.02)
	if text != "50.00 FPS (20.00 ms)" {
		t.Errorf("Unexpected readout %q", text)
	}
	// Held until the next multiple.
	if got := f.add(fpsWindow+1, 1); got != text {
		t.Errorf("Expected readout held, got %q", got)
	}
}

func TestFPSCounterFrameZero(t *testing.T) {
	f := newFPSCounter()
	if got := f.add(0, 0.5); got != "0 FPS (0 ms)" {
		t.Errorf("Expected frame 0 not to refresh, got %q", got)
	}
}

func TestCameraLines(t *testing.T) {
	got := cameraLines(renderer.CameraStatus{
		Position:    linalg.Vec3{1, -2.5, 3.125},
		HasPosition: true,
		YawLocked:   true,
	})
	if got[0] != "Pos: 1.00, -2.50, 3.12" && got[0] != "Pos: 1.00, -2.50, 3.13" {
		t.Errorf("Unexpected position line %q", got[0])
	}
	if got[1] != "Yaw: world | Pointer: free" {
		t.Errorf("Unexpected state line %q", got[1])
	}
	if got := cameraLines(renderer.CameraStatus{PointerGrab: true}); got[0] != "Pos: n/a" || got[1] != "Yaw: local | Pointer: grabbed" {
		t.Errorf("Unexpected lines %q", got)
	}
}

func TestFrameStats(t *testing.T) {
	var s frameStats
	for i := 1; i <= historyLen+5; i++ {
		s.record(time.Duration(i) * time.Millisecond)
	}
	if len(s.history) != historyLen {
		t.Fatalf("Expected history capped at %d, got %d", historyLen, len(s.history))
	}
	if s.min != 6*time.Millisecond || s.max != 65*time.Millisecond {
		t.Errorf("Unexpected min/max %v %v", s.min, s.max)
	}
	if s.avg != 35500*time.Microsecond {
		t.Errorf("Unexpected avg %v", s.avg)
	}

	profiling.ResetFrame()
	defer profiling.ResetFrame()
	lines := s.lines()
	if len(lines) != 1 || lines[0] != "Frame: 35.50ms avg (6.00 min, 65.00 max)" {
		t.Errorf("Unexpected lines %q", lines)
	}
}

func TestToggleProfiling(t *testing.T) {
	h := NewHUD()
	if h.ShowProfiling() {
		t.Fatalf("Expected profiling hidden by default")
	}
	h.ToggleProfiling()
	if !h.ShowProfiling() {
		t.Errorf("Expected profiling shown after toggle")
	}
}
