package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events into the input manager and the session.
func SetupInputHandlers(app *App) {
	app.inputManager.Attach(app.window)

	app.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		if app.session != nil {
			app.session.Resize(fbWidth, fbHeight)
		}
	})

	app.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			app.inputManager.ResetCursor()
		}
	})

	app.window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
