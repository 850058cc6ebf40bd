// This file tracks shelf votes per album. When the files of one release
// arrive from different shelves, the shelf with the most votes wins and
// the conflict is logged.

package shelf

import (
	"log"
	"sync"
)

// Manager collects shelf votes per album and resolves conflicts.
type Manager struct {
	mu      sync.Mutex
	byAlbum map[string]string
	votes   map[string]map[string]int
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		byAlbum: make(map[string]string),
		votes:   make(map[string]map[string]int),
	}
}

// Vote registers a shelf vote for an album and updates the current
// winner. Votes with an empty shelf name are ignored.
func (m *Manager) Vote(albumID, shelfName string) {
	if albumID == "" || shelfName == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	counts, ok := m.votes[albumID]
	if !ok {
		counts = make(map[string]int)
		m.votes[albumID] = counts
	}
	counts[shelfName]++

	winner := winnerOf(counts)
	if len(counts) > 1 {
		log.Printf("Album %s has files from different shelves (votes: %v), using %q", albumID, counts, winner)
	}
	m.byAlbum[albumID] = winner
}

// AlbumShelf returns the winning shelf for an album, if any votes were cast.
func (m *Manager) AlbumShelf(albumID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.byAlbum[albumID]
	return name, ok
}

// ClearAlbum drops all vote state for an album, e.g. after its files
// have been saved.
func (m *Manager) ClearAlbum(albumID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byAlbum, albumID)
	delete(m.votes, albumID)
}

// winnerOf picks the shelf with the most votes. Ties resolve to the
// lexicographically smallest name so the outcome is deterministic.
func winnerOf(counts map[string]int) string {
	var winner string
	best := -1
	for name, n := range counts {
		if n > best || (n == best && name < winner) {
			winner = name
			best = n
		}
	}
	return winner
}
