package game

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shinage/internal/input"
	"shinage/internal/profiling"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp creates the session and wires the window callbacks.
func NewApp(window *glfw.Window, im *input.Manager) (*App, error) {
	s, err := NewSession(window)
	if err != nil {
		return nil, err
	}
	a := &App{
		window:       window,
		inputManager: im,
		session:      s,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(a)
	return a, nil
}

func (a *App) Run() {
	defer a.session.Cleanup()
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()

	updateStart := time.Now()
	if a.session.Update(dt, a.inputManager) {
		a.window.SetShouldClose(true)
	}
	a.session.HUD.ProfilingSetUpdateDuration(time.Since(updateStart))

	a.session.Render(dt)
	a.window.SwapBuffers()

	processing := time.Since(startTick)
	a.session.HUD.ProfilingSetFrameDuration(processing)
	if processing > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

// RefreshRender repaints while the window is being resized.
func (a *App) RefreshRender() {
	a.session.Render(0)
	a.window.SwapBuffers()
}
