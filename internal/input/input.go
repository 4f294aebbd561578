package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"shinage/internal/camera"
	"shinage/internal/linalg"
)

// Action is a logical control, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRollLeft
	ActionRollRight
	ActionResetCamera
	ActionDumpVertices
	ActionReportPosition
	ActionTogglePointer
	ActionToggleYawLock
	ActionToggleProfiling
	ActionToggleScene
	ActionQuit
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	"MoveForward", "MoveBackward", "MoveLeft", "MoveRight", "MoveUp", "MoveDown",
	"RollLeft", "RollRight", "ResetCamera", "DumpVertices", "ReportPosition",
	"TogglePointer", "ToggleYawLock", "ToggleProfiling", "ToggleScene", "Quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// Manager maps keys and mouse buttons to actions, tracks press edges per
// frame and accumulates cursor travel between frames.
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Cursor travel since the last PostUpdate.
	lastX, lastY float64
	firstMouse   bool
	dx, dy       float64
}

// NewManager returns a Manager with the default free-fly bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		firstMouse:           true,
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyDown, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyLeft, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyRight, ActionMoveRight)
	m.BindKey(glfw.KeyR, ActionMoveUp)
	m.BindKey(glfw.KeyF, ActionMoveDown)
	m.BindKey(glfw.KeyQ, ActionRollLeft)
	m.BindKey(glfw.KeyE, ActionRollRight)
	m.BindKey(glfw.KeySpace, ActionReportPosition)
	m.BindKey(glfw.KeyF1, ActionTogglePointer)
	m.BindKey(glfw.KeyF2, ActionToggleYawLock)
	m.BindKey(glfw.KeyV, ActionToggleProfiling)
	m.BindKey(glfw.KeyTab, ActionToggleScene)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionResetCamera)
	m.BindMouseButton(glfw.MouseButtonRight, ActionDumpVertices)

	return m
}

// BindKey adds action to key. A key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes every action bound to key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a raw key event.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}
	m.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent updates state from a raw mouse button event.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions, ok := m.mouseButtonToActions[button]
	if !ok {
		return
	}
	m.apply(actions, action == glfw.Press)
}

// apply records edges as events arrive so a press and release inside one
// frame is still seen. Caller holds mu.
func (m *Manager) apply(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !m.current[a] {
			m.justPressed[a] = true
		}
		if !pressed && m.current[a] {
			m.justReleased[a] = true
		}
		m.current[a] = pressed
	}
}

// HandleCursorPos accumulates cursor travel. The first sample only
// establishes the reference point.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
		return
	}
	m.dx += x - m.lastX
	m.dy += y - m.lastY
	m.lastX, m.lastY = x, y
}

// ResetCursor forgets the reference point, e.g. after the pointer is
// grabbed or released, so the jump is not read as a look.
func (m *Manager) ResetCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.firstMouse = true
	m.dx, m.dy = 0, 0
}

// Attach installs the GLFW callbacks on window.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		m.HandleCursorPos(x, y)
	})
}

// PostUpdate clears the per-frame edges and cursor travel. Call it once all
// input for the frame has been read.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.dx, m.dy = 0, 0
}

// IsActive reports whether action is held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed reports whether action went down this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}

// CursorDelta returns cursor travel since the last PostUpdate.
func (m *Manager) CursorDelta() linalg.Vec2 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return linalg.Vec2{m.dx, m.dy}
}

// CameraIntent collects this frame's camera controls. Cursor travel is only
// reported when look is true, i.e. while the pointer is grabbed.
func (m *Manager) CameraIntent(look bool) camera.Intent {
	axis := func(pos, neg Action) float64 {
		var v float64
		if m.IsActive(pos) {
			v++
		}
		if m.IsActive(neg) {
			v--
		}
		return v
	}

	in := camera.Intent{
		Move: linalg.Vec3{
			axis(ActionMoveRight, ActionMoveLeft),
			axis(ActionMoveUp, ActionMoveDown),
			axis(ActionMoveForward, ActionMoveBackward),
		},
		Roll:           axis(ActionRollRight, ActionRollLeft),
		Reset:          m.JustPressed(ActionResetCamera),
		ToggleYawLock:  m.JustPressed(ActionToggleYawLock),
		ReportPosition: m.JustPressed(ActionReportPosition),
	}
	if look {
		in.Look = m.CursorDelta()
	}
	return in
}
