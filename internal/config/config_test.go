package config

import (
	"math"
	"testing"
)

func TestSetFOVClamps(t *testing.T) {
	orig := GetFOV()
	defer SetFOV(orig)

	SetFOV(0.01)
	if got := GetFOV(); math.Abs(got-10*math.Pi/180) > 1e-12 {
		t.Errorf("Expected FOV clamped to 10 degrees, got %v", got)
	}
	SetFOV(math.Pi)
	if got := GetFOV(); math.Abs(got-150*math.Pi/180) > 1e-12 {
		t.Errorf("Expected FOV clamped to 150 degrees, got %v", got)
	}
	SetFOV(math.Pi / 3)
	if got := GetFOV(); got != math.Pi/3 {
		t.Errorf("Expected pi/3, got %v", got)
	}
}

func TestSetClipPlanesRejectsInvalid(t *testing.T) {
	n, f := GetClipPlanes()
	defer SetClipPlanes(n, f)

	SetClipPlanes(0.5, 500)
	SetClipPlanes(-1, 10)
	SetClipPlanes(10, 5)
	if n2, f2 := GetClipPlanes(); n2 != 0.5 || f2 != 500 {
		t.Errorf("Expected (0.5, 500), got (%v, %v)", n2, f2)
	}
}

func TestSpeedsAndSensitivity(t *testing.T) {
	ms, mv, rs := GetMouseSensitivity(), GetMoveSpeed(), GetRollSpeed()
	defer func() {
		SetMouseSensitivity(ms)
		SetMoveSpeed(mv)
		SetRollSpeed(rs)
	}()

	SetMouseSensitivity(1)
	if got := GetMouseSensitivity(); got != 0.05 {
		t.Errorf("Expected sensitivity clamped to 0.05, got %v", got)
	}
	SetMouseSensitivity(-3)
	if got := GetMouseSensitivity(); got <= 0 {
		t.Errorf("Expected positive sensitivity, got %v", got)
	}
	SetMoveSpeed(-2)
	if got := GetMoveSpeed(); got != 0 {
		t.Errorf("Expected move speed 0, got %v", got)
	}
	SetRollSpeed(-2)
	if got := GetRollSpeed(); got != 0 {
		t.Errorf("Expected roll speed 0, got %v", got)
	}
}

func TestRenderSettings(t *testing.T) {
	d, l, v := GetStackDepth(), GetFPSLimit(), GetVSync()
	defer func() {
		SetStackDepth(d)
		SetFPSLimit(l)
		SetVSync(v)
	}()

	if d != 10 {
		t.Errorf("Expected default stack depth 10, got %d", d)
	}
	SetStackDepth(1)
	if got := GetStackDepth(); got != 2 {
		t.Errorf("Expected depth clamped to 2, got %d", got)
	}
	SetStackDepth(1000)
	if got := GetStackDepth(); got != 64 {
		t.Errorf("Expected depth clamped to 64, got %d", got)
	}
	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected uncapped (0), got %d", got)
	}
	SetVSync(false)
	if GetVSync() {
		t.Errorf("Expected vsync off")
	}
}
