package config

import (
	"math"
	"sync"
)

// CameraSettings holds the free-fly camera configuration
type CameraSettings struct {
	mu               sync.RWMutex
	fovY             float64 // radians
	near             float64
	far              float64
	mouseSensitivity float64 // radians per pixel of cursor travel
	moveSpeed        float64 // world units per second
	rollSpeed        float64 // radians per second
}

var globalCameraSettings = &CameraSettings{
	fovY:             math.Pi / 4,
	near:             0.1,
	far:              100.0,
	mouseSensitivity: 0.0025,
	moveSpeed:        2.0,
	rollSpeed:        math.Pi / 2,
}

// GetFOV returns the vertical field of view in radians
func GetFOV() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.fovY
}

// SetFOV sets the vertical field of view, clamped to [10°, 150°]
func SetFOV(fovY float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	minFOV := 10 * math.Pi / 180
	maxFOV := 150 * math.Pi / 180
	if fovY < minFOV {
		fovY = minFOV
	}
	if fovY > maxFOV {
		fovY = maxFOV
	}
	globalCameraSettings.fovY = fovY
}

// GetClipPlanes returns the near and far clip distances
func GetClipPlanes() (near, far float64) {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.near, globalCameraSettings.far
}

// SetClipPlanes sets near and far. Invalid pairs (near <= 0 or far <= near) are ignored.
func SetClipPlanes(near, far float64) {
	if near <= 0 || far <= near {
		return
	}
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()
	globalCameraSettings.near = near
	globalCameraSettings.far = far
}

// GetMouseSensitivity returns radians of rotation per pixel of cursor travel
func GetMouseSensitivity() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse sensitivity, clamped to (0, 0.05]
func SetMouseSensitivity(s float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if s <= 0 {
		s = 0.0001
	}
	if s > 0.05 {
		s = 0.05
	}
	globalCameraSettings.mouseSensitivity = s
}

// GetMoveSpeed returns camera travel speed in units per second
func GetMoveSpeed() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.moveSpeed
}

// SetMoveSpeed sets the travel speed; negative values become 0
func SetMoveSpeed(speed float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if speed < 0 {
		speed = 0
	}
	globalCameraSettings.moveSpeed = speed
}

// GetRollSpeed returns roll speed in radians per second
func GetRollSpeed() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.rollSpeed
}

// SetRollSpeed sets the roll speed; negative values become 0
func SetRollSpeed(speed float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if speed < 0 {
		speed = 0
	}
	globalCameraSettings.rollSpeed = speed
}
