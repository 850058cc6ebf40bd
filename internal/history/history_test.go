package history

import "testing"

func TestPushEvictsOldest(t *testing.T) {
	s := New[string](5)
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		s.Push(v)
	}

	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}

	// The oldest entry "a" was evicted; undo returns the rest newest first.
	want := []string{"f", "e", "d", "c", "b"}
	for _, w := range want {
		got, ok := s.Undo()
		if !ok {
			t.Fatalf("Undo() unexpectedly empty, wanted %q", w)
		}
		if got != w {
			t.Errorf("Undo() = %q, want %q", got, w)
		}
	}

	if _, ok := s.Undo(); ok {
		t.Error("Undo() on empty stack reported a value")
	}
}

func TestCanUndo(t *testing.T) {
	s := New[int](0) // falls back to DefaultCapacity
	if s.CanUndo() {
		t.Error("CanUndo() on empty stack = true")
	}
	s.Push(42)
	if !s.CanUndo() {
		t.Error("CanUndo() after Push = false")
	}
	v, ok := s.Undo()
	if !ok || v != 42 {
		t.Errorf("Undo() = (%d, %v), want (42, true)", v, ok)
	}
	if s.CanUndo() {
		t.Error("CanUndo() after draining = true")
	}
}
