package config

import "sync"

// RenderSettings holds render loop configuration
type RenderSettings struct {
	mu         sync.RWMutex
	stackDepth int
	fpsLimit   int // 0 means uncapped
	vsync      bool
}

var globalRenderSettings = &RenderSettings{
	stackDepth: 10,
	fpsLimit:   60,
	vsync:      true,
}

// GetStackDepth returns the capacity of each matrix stack
func GetStackDepth() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.stackDepth
}

// SetStackDepth sets the matrix stack capacity, clamped to [2, 64].
// It only takes effect when the stacks are next built.
func SetStackDepth(depth int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if depth < 2 {
		depth = 2
	}
	if depth > 64 {
		depth = 64
	}
	globalRenderSettings.stackDepth = depth
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; values <= 0 disable it
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for vertical sync
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}
