// This file manages the persisted set of known shelves.

package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/shelftag/shelftag/internal/models"
	"github.com/shelftag/shelftag/internal/shelf"
	"github.com/shelftag/shelftag/internal/util"
)

// ListShelves returns all shelves with the number of tracks filed under
// each, in natural sort order.
func (s *Store) ListShelves() ([]*models.Shelf, error) {
	query := `
		SELECT sh.id, sh.name, COUNT(t.id) AS track_count
		FROM shelves sh
		LEFT JOIN tracks t ON t.shelf = sh.name
		GROUP BY sh.id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shelves []*models.Shelf
	for rows.Next() {
		var sh models.Shelf
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.TrackCount); err != nil {
			return nil, err
		}
		shelves = append(shelves, &sh)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(shelves, func(i, j int) bool {
		return util.NaturalSortLess(shelves[i].Name, shelves[j].Name)
	})
	return shelves, nil
}

// AddShelf registers a shelf name. The name is validated first; adding
// an existing shelf is a no-op and returns the existing row.
func (s *Store) AddShelf(name string) (*models.Shelf, error) {
	name = strings.TrimSpace(name)
	if ok, msg := shelf.ValidateName(name); !ok {
		return nil, fmt.Errorf("invalid shelf name: %s", msg)
	}

	var existing models.Shelf
	err := s.db.QueryRow("SELECT id, name FROM shelves WHERE name = ?", name).Scan(&existing.ID, &existing.Name)
	if err == nil {
		return &existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	res, err := s.db.Exec("INSERT INTO shelves (name) VALUES (?)", name)
	if err != nil {
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &models.Shelf{ID: id, Name: name}, nil
}

// RemoveShelf deletes a shelf by name. Tracks keep their shelf tag; they
// are reclassified on the next scan.
func (s *Store) RemoveShelf(name string) error {
	_, err := s.db.Exec("DELETE FROM shelves WHERE name = ?", name)
	return err
}

// ShelfSet loads the known shelves into an in-memory set for the
// classifier.
func (s *Store) ShelfSet() (*shelf.Set, error) {
	rows, err := s.db.Query("SELECT name FROM shelves")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := shelf.NewSet()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		set.Add(name)
	}
	return set, rows.Err()
}
