// Package history provides a small fixed-capacity undo stack. The
// settings handlers keep one instance per editable field, so a bad edit
// to the pattern or whitelist text can be rolled back.
package history

// DefaultCapacity is the number of snapshots kept per field.
const DefaultCapacity = 5

// Stack is a bounded LIFO of value snapshots. Pushing beyond capacity
// discards the oldest entry.
type Stack[T any] struct {
	capacity int
	entries  []T
}

// New returns an empty stack. A capacity below 1 falls back to
// DefaultCapacity.
func New[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Stack[T]{capacity: capacity}
}

// Push records a snapshot, evicting the oldest one when full.
func (s *Stack[T]) Push(value T) {
	s.entries = append(s.entries, value)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[1:]
	}
}

// Undo removes and returns the most recent snapshot. The second return
// value is false when the stack is empty.
func (s *Stack[T]) Undo() (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return last, true
}

// CanUndo reports whether a snapshot is available.
func (s *Stack[T]) CanUndo() bool {
	return len(s.entries) > 0
}

// Len returns the number of stored snapshots.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}
