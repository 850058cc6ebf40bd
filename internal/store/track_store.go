// This file persists the tracks discovered by the library scanner.

package store

import (
	"database/sql"
	"time"

	"github.com/shelftag/shelftag/internal/models"
)

// UpsertTrack inserts a track or updates the existing row for its path.
// It returns the stored track with its ID filled in.
func (s *Store) UpsertTrack(t *models.Track) (*models.Track, error) {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO tracks (path, artist, album, title, album_id, release_type, shelf, shelf_backup, suspicious, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			artist = excluded.artist,
			album = excluded.album,
			title = excluded.title,
			album_id = excluded.album_id,
			release_type = excluded.release_type,
			shelf = excluded.shelf,
			shelf_backup = excluded.shelf_backup,
			suspicious = excluded.suspicious,
			updated_at = excluded.updated_at`,
		t.Path, t.Artist, t.Album, t.Title, t.AlbumID, t.ReleaseType,
		t.Shelf, t.ShelfBackup, t.Suspicious, now, now,
	)
	if err != nil {
		return nil, err
	}
	return s.GetTrackByPath(t.Path)
}

// GetTrackByPath retrieves a track by its unique path.
func (s *Store) GetTrackByPath(path string) (*models.Track, error) {
	return s.scanTrack(s.db.QueryRow(
		"SELECT id, path, artist, album, title, album_id, release_type, shelf, shelf_backup, suspicious FROM tracks WHERE path = ?",
		path,
	))
}

// GetTrackByID retrieves a track by its primary key.
func (s *Store) GetTrackByID(id int64) (*models.Track, error) {
	return s.scanTrack(s.db.QueryRow(
		"SELECT id, path, artist, album, title, album_id, release_type, shelf, shelf_backup, suspicious FROM tracks WHERE id = ?",
		id,
	))
}

// ListTracks returns tracks, optionally filtered by shelf name and/or
// the suspicious flag, ordered by path.
func (s *Store) ListTracks(shelfName string, suspiciousOnly bool) ([]*models.Track, error) {
	query := "SELECT id, path, artist, album, title, album_id, release_type, shelf, shelf_backup, suspicious FROM tracks"
	var conds []string
	var args []interface{}
	if shelfName != "" {
		conds = append(conds, "shelf = ?")
		args = append(args, shelfName)
	}
	if suspiciousOnly {
		conds = append(conds, "suspicious = 1")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY path ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []*models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Path, &t.Artist, &t.Album, &t.Title, &t.AlbumID, &t.ReleaseType, &t.Shelf, &t.ShelfBackup, &t.Suspicious); err != nil {
			return nil, err
		}
		tracks = append(tracks, &t)
	}
	return tracks, rows.Err()
}

// UpdateTrackShelf assigns a shelf to a track, stashing a differing
// previous shelf in the backup column. A manual assignment clears the
// suspicious flag.
func (s *Store) UpdateTrackShelf(id int64, shelfName string) (*models.Track, error) {
	track, err := s.GetTrackByID(id)
	if err != nil {
		return nil, err
	}

	backup := track.ShelfBackup
	if track.Shelf != "" && track.Shelf != shelfName {
		backup = track.Shelf
	}

	_, err = s.db.Exec(
		"UPDATE tracks SET shelf = ?, shelf_backup = ?, suspicious = 0, updated_at = ? WHERE id = ?",
		shelfName, backup, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}
	return s.GetTrackByID(id)
}

// AllTrackPaths returns the paths of all stored tracks.
func (s *Store) AllTrackPaths() (map[string]int64, error) {
	rows, err := s.db.Query("SELECT id, path FROM tracks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]int64)
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return nil, err
		}
		paths[path] = id
	}
	return paths, rows.Err()
}

// DeleteTrack removes a track row.
func (s *Store) DeleteTrack(id int64) error {
	_, err := s.db.Exec("DELETE FROM tracks WHERE id = ?", id)
	return err
}

// CountTracks returns the number of stored tracks.
func (s *Store) CountTracks() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	return count, err
}

func (s *Store) scanTrack(row *sql.Row) (*models.Track, error) {
	var t models.Track
	err := row.Scan(&t.ID, &t.Path, &t.Artist, &t.Album, &t.Title, &t.AlbumID, &t.ReleaseType, &t.Shelf, &t.ShelfBackup, &t.Suspicious)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
