package matstack

import "shinage/internal/linalg"

// DefaultDepth is enough for the shallow hierarchies the demo scenes draw.
const DefaultDepth = 10

// Stack is a fixed-capacity LIFO of matrices.
// Pushing onto a full stack fails and reading an empty one yields Identity.
type Stack struct {
	items []linalg.Mat4
	top   int
}

// New creates an empty stack holding at most capacity matrices.
func New(capacity int) *Stack {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack{
		items: make([]linalg.Mat4, capacity),
		top:   -1,
	}
}

func (s *Stack) IsEmpty() bool { return s.top == -1 }
func (s *Stack) IsFull() bool  { return s.top == len(s.items)-1 }
func (s *Stack) Len() int      { return s.top + 1 }
func (s *Stack) Cap() int      { return len(s.items) }

// Push stores m on top. It returns false, leaving the stack untouched, when full.
func (s *Stack) Push(m linalg.Mat4) bool {
	if s.IsFull() {
		return false
	}
	s.top++
	s.items[s.top] = m
	return true
}

// Pop removes and returns the top matrix, or Identity if the stack is empty.
func (s *Stack) Pop() linalg.Mat4 {
	m, _ := s.TryPop()
	return m
}

// TryPop is Pop that also reports whether anything was removed.
func (s *Stack) TryPop() (linalg.Mat4, bool) {
	if s.IsEmpty() {
		return linalg.Identity, false
	}
	m := s.items[s.top]
	s.top--
	return m, true
}

// Peek returns the top matrix without removing it, or Identity if the stack is empty.
func (s *Stack) Peek() linalg.Mat4 {
	m, _ := s.TryPeek()
	return m
}

func (s *Stack) TryPeek() (linalg.Mat4, bool) {
	if s.IsEmpty() {
		return linalg.Identity, false
	}
	return s.items[s.top], true
}

// Reset empties the stack without releasing its storage.
func (s *Stack) Reset() { s.top = -1 }
