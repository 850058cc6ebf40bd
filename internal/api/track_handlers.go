// Handlers for browsing tracks and manually re-shelving them.

package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shelftag/shelftag/internal/shelf"
)

func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	shelfName := r.URL.Query().Get("shelf")
	suspiciousOnly := r.URL.Query().Get("suspicious") == "true"

	tracks, err := s.store.ListTracks(shelfName, suspiciousOnly)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to list tracks")
		return
	}
	RespondWithJSON(w, http.StatusOK, tracks)
}

// handleAssignTrackShelf moves a track to a shelf. The shelf is
// registered if it is new, and the assignment clears the suspicious
// flag since it came from the user.
func (s *Server) handleAssignTrackShelf(w http.ResponseWriter, r *http.Request) {
	trackID, err := strconv.ParseInt(chi.URLParam(r, "trackID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid track ID")
		return
	}

	var payload struct {
		Shelf string `json:"shelf"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if ok, msg := shelf.ValidateName(payload.Shelf); !ok {
		RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := s.store.AddShelf(payload.Shelf); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to register shelf")
		return
	}

	track, err := s.store.UpdateTrackShelf(trackID, payload.Shelf)
	if err == sql.ErrNoRows {
		RespondWithError(w, http.StatusNotFound, "Track not found")
		return
	}
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to update track")
		return
	}

	RespondWithJSON(w, http.StatusOK, track)
}
