package shelf

import "testing"

func TestManagerVoting(t *testing.T) {
	m := NewManager()

	m.Vote("album1", "Standard")
	m.Vote("album1", "Incoming")
	m.Vote("album1", "Standard")

	name, ok := m.AlbumShelf("album1")
	if !ok || name != "Standard" {
		t.Errorf("AlbumShelf(album1) = (%q, %v), want (\"Standard\", true)", name, ok)
	}
}

func TestManagerTieIsDeterministic(t *testing.T) {
	m := NewManager()
	m.Vote("album1", "Zebra")
	m.Vote("album1", "Alpha")

	// Ties resolve to the lexicographically smallest name.
	name, _ := m.AlbumShelf("album1")
	if name != "Alpha" {
		t.Errorf("AlbumShelf tie = %q, want \"Alpha\"", name)
	}
}

func TestManagerIgnoresEmptyVotes(t *testing.T) {
	m := NewManager()
	m.Vote("", "Standard")
	m.Vote("album1", "")

	if _, ok := m.AlbumShelf("album1"); ok {
		t.Error("AlbumShelf reported a winner from empty votes")
	}
}

func TestManagerClearAlbum(t *testing.T) {
	m := NewManager()
	m.Vote("album1", "Standard")
	m.ClearAlbum("album1")

	if _, ok := m.AlbumShelf("album1"); ok {
		t.Error("AlbumShelf reported a winner after ClearAlbum")
	}
}
