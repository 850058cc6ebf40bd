// This file defines the core data structures (models) for our application.
// These structs represent the tracks and shelves in our library.

package models

import "time"

// Track represents a single music file discovered in the library.
type Track struct {
	ID          int64  `json:"id"`
	Path        string `json:"path"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Title       string `json:"title"`
	AlbumID     string `json:"album_id"` // groups files that belong to the same release
	ReleaseType string `json:"release_type,omitempty"`
	Shelf       string `json:"shelf"`
	ShelfBackup string `json:"shelf_backup,omitempty"`
	Suspicious  bool   `json:"suspicious"`

	CreatedAt time.Time `json:"-"` // Hide from JSON responses
	UpdatedAt time.Time `json:"-"` // Hide from JSON responses
}

// Shelf represents a top-level library folder used as a collection category.
type Shelf struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
}
