package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shinage/internal/linalg"
)

func TestKeyEdges(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !m.IsActive(ActionMoveForward) || !m.JustPressed(ActionMoveForward) {
		t.Fatalf("Expected W to press MoveForward")
	}
	m.PostUpdate()
	if !m.IsActive(ActionMoveForward) {
		t.Errorf("Expected MoveForward still held after PostUpdate")
	}
	if m.JustPressed(ActionMoveForward) {
		t.Errorf("Expected press edge cleared after PostUpdate")
	}

	// Repeat does not produce a new edge.
	m.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if m.JustPressed(ActionMoveForward) {
		t.Errorf("Expected no edge on repeat")
	}

	m.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if m.IsActive(ActionMoveForward) || !m.JustReleased(ActionMoveForward) {
		t.Errorf("Expected release edge")
	}
}

func TestPressAndReleaseInOneFrame(t *testing.T) {
	m := NewManager()
	m.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	m.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Release)
	if !m.JustPressed(ActionResetCamera) || !m.JustReleased(ActionResetCamera) {
		t.Errorf("Expected both edges within the frame")
	}
	if !m.CameraIntent(false).Reset {
		t.Errorf("Expected Reset in intent")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()
	m.UnbindKey(glfw.KeyW)
	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if m.IsActive(ActionMoveForward) {
		t.Errorf("Expected unbound key to do nothing")
	}
	// Arrow binding still works.
	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !m.IsActive(ActionMoveForward) {
		t.Errorf("Expected Up arrow to press MoveForward")
	}
	if m.IsActive(Action(-1)) || m.JustPressed(ActionCount) {
		t.Errorf("Expected out of range actions to read false")
	}
}

func TestCursorDelta(t *testing.T) {
	m := NewManager()
	m.HandleCursorPos(100, 100)
	if d := m.CursorDelta(); d != (linalg.Vec2{}) {
		t.Errorf("Expected first sample to set reference only, got %v", d)
	}
	m.HandleCursorPos(110, 95)
	m.HandleCursorPos(115, 90)
	if d := m.CursorDelta(); d != (linalg.Vec2{15, -10}) {
		t.Errorf("Expected accumulated delta (15,-10), got %v", d)
	}
	m.PostUpdate()
	if d := m.CursorDelta(); d != (linalg.Vec2{}) {
		t.Errorf("Expected delta cleared, got %v", d)
	}

	m.ResetCursor()
	m.HandleCursorPos(500, 500)
	if d := m.CursorDelta(); d != (linalg.Vec2{}) {
		t.Errorf("Expected jump after ResetCursor to be ignored, got %v", d)
	}
}

func TestCameraIntent(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyD, glfw.Press)
	m.HandleKeyEvent(glfw.KeyS, glfw.Press)
	m.HandleKeyEvent(glfw.KeyR, glfw.Press)
	m.HandleKeyEvent(glfw.KeyF, glfw.Press)
	m.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	m.HandleKeyEvent(glfw.KeyF2, glfw.Press)
	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	m.HandleCursorPos(0, 0)
	m.HandleCursorPos(3, 4)

	in := m.CameraIntent(true)
	if in.Move != (linalg.Vec3{1, 0, -1}) {
		t.Errorf("Expected move (1,0,-1), got %v", in.Move)
	}
	if in.Roll != -1 {
		t.Errorf("Expected roll -1, got %v", in.Roll)
	}
	if !in.ToggleYawLock || !in.ReportPosition || in.Reset {
		t.Errorf("Unexpected flags %+v", in)
	}
	if in.Look != (linalg.Vec2{3, 4}) {
		t.Errorf("Expected look (3,4), got %v", in.Look)
	}
	if m.CameraIntent(false).Look != (linalg.Vec2{}) {
		t.Errorf("Expected no look while pointer is free")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleYawLock.String() != "ToggleYawLock" || ActionQuit.String() != "Quit" {
		t.Errorf("Unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Expected Unknown for out of range action")
	}
}
