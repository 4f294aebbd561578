package transform

import (
	"fmt"

	"shinage/internal/linalg"
	"shinage/internal/matstack"
)

// Kind names one of the three matrix stacks.
type Kind int

const (
	Model Kind = iota
	View
	Projection
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Model:
		return "model"
	case View:
		return "view"
	case Projection:
		return "projection"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Context holds the Model, View and Projection stacks and the one currently
// targeted by transform calls. It is not safe for concurrent use; keep it on the
// render thread.
type Context struct {
	depth  int
	stacks [kindCount]*matstack.Stack
	active Kind
	bound  bool
}

// NewContext returns built stacks of the given depth with nothing selected yet.
func NewContext(depth int) *Context {
	c := &Context{depth: depth}
	c.Build()
	return c
}

// Build recreates all three stacks, each holding a single Identity.
// A previous selection keeps pointing at the stack of the same kind.
func (c *Context) Build() {
	for k := range c.stacks {
		s := matstack.New(c.depth)
		s.Push(linalg.Identity)
		c.stacks[k] = s
	}
}

// SetMat selects the stack later calls act on. Unknown kinds are ignored.
func (c *Context) SetMat(k Kind) {
	if k < 0 || k >= kindCount {
		return
	}
	c.active = k
	c.bound = true
}

// Active returns the selected kind; ok is false before the first SetMat.
func (c *Context) Active() (k Kind, ok bool) {
	return c.active, c.bound
}

// Stack returns the stack for k, or nil for an unknown kind.
func (c *Context) Stack(k Kind) *matstack.Stack {
	if k < 0 || k >= kindCount {
		return nil
	}
	return c.stacks[k]
}

func (c *Context) activeStack() *matstack.Stack {
	if !c.bound {
		return nil
	}
	return c.stacks[c.active]
}

// Top returns the top of the stack for k regardless of the selection.
// This is what the renderer uploads for each draw call.
func (c *Context) Top(k Kind) linalg.Mat4 {
	s := c.Stack(k)
	if s == nil {
		return linalg.Identity
	}
	return s.Peek()
}

// Peek returns the top of the selected stack; ok is false when nothing is selected.
func (c *Context) Peek() (linalg.Mat4, bool) {
	s := c.activeStack()
	if s == nil {
		return linalg.Identity, false
	}
	return s.Peek(), true
}

// Apply pops the selected top, replaces it with fn of it and pushes the result.
// It reports false, doing nothing, when no stack is selected.
func (c *Context) Apply(fn func(linalg.Mat4) linalg.Mat4) bool {
	s := c.activeStack()
	if s == nil {
		return false
	}
	m := s.Pop()
	s.Push(fn(m))
	return true
}

// Load discards the selected top and puts m in its place.
func (c *Context) Load(m linalg.Mat4) bool {
	return c.Apply(func(linalg.Mat4) linalg.Mat4 { return m })
}

// PushMatrix duplicates the selected top so later changes can be undone by PopMatrix.
// It fails when nothing is selected or the stack is full.
func (c *Context) PushMatrix() bool {
	s := c.activeStack()
	if s == nil {
		return false
	}
	return s.Push(s.Peek())
}

// PopMatrix discards the selected top. It fails when nothing is selected or the
// stack is already empty.
func (c *Context) PopMatrix() bool {
	s := c.activeStack()
	if s == nil || s.IsEmpty() {
		return false
	}
	s.Pop()
	return true
}

// Translate composes a translation by v onto the selected top.
func (c *Context) Translate(v linalg.Vec3) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return Translated(m, v) })
}

// Scale composes a per-axis scale onto the selected top.
func (c *Context) Scale(v linalg.Vec3) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return Scaled(m, v) })
}

// Rotate composes a rotation of angle radians about axis onto the selected top.
func (c *Context) Rotate(axis linalg.AxisLine, angle float64) {
	c.Apply(func(m linalg.Mat4) linalg.Mat4 { return Rotated(m, axis, angle) })
}
