// Handlers for shelf management: listing, adding and removing shelves,
// classifying a path, and the rename script endpoints.

package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/shelftag/shelftag/internal/renamescript"
	"github.com/shelftag/shelftag/internal/shelf"
)

func (s *Server) handleListShelves(w http.ResponseWriter, r *http.Request) {
	shelves, err := s.store.ListShelves()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to list shelves")
		return
	}
	RespondWithJSON(w, http.StatusOK, shelves)
}

func (s *Server) handleAddShelf(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if ok, msg := shelf.ValidateName(payload.Name); !ok {
		RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := s.store.AddShelf(payload.Name)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to add shelf")
		return
	}

	// Names with a leading or trailing dot are allowed but flagged.
	_, warning := shelf.ValidateName(created.Name)
	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"shelf":   created,
		"warning": warning,
	})
}

func (s *Server) handleRemoveShelf(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "shelfName")
	if name == "" {
		RespondWithError(w, http.StatusBadRequest, "Shelf name is required")
		return
	}
	if err := s.store.RemoveShelf(name); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to remove shelf")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleScanShelves reads the top-level directories of the library and
// registers every name that validates and does not look like a
// misplaced artist or album folder.
func (s *Server) handleScanShelves(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.app.Config().Library.Path)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to read library directory")
		return
	}

	var added, skipped []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ok, _ := shelf.ValidateName(name); !ok {
			skipped = append(skipped, name)
			continue
		}
		if len(shelf.SuspicionReasons(name)) > 0 {
			skipped = append(skipped, name)
			continue
		}
		if _, err := s.store.AddShelf(name); err != nil {
			RespondWithError(w, http.StatusInternalServerError, "Failed to register shelf")
			return
		}
		added = append(added, name)
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"added":   added,
		"skipped": skipped,
	})
}

// handleDetectShelf classifies a file path without touching the library.
// It reports the shelf the scanner would assign and, for unknown
// segments, the reasons the name looks like an album folder.
func (s *Server) handleDetectShelf(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	known, err := s.store.ShelfSet()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load shelves")
		return
	}

	cfg := s.app.Config()
	name, suspicious, err := shelf.Classify(payload.Path, cfg.Library.Path, known, cfg.Library.DefaultShelf)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The suspicion reasons apply to the raw folder name, which differs
	// from the resulting shelf when classification fell back to the default.
	segment, _ := shelf.Segment(payload.Path, cfg.Library.Path)
	var reasons []string
	if suspicious {
		reasons = shelf.SuspicionReasons(segment)
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"shelf":      name,
		"segment":    segment,
		"suspicious": suspicious,
		"known":      known.Has(name),
		"reasons":    reasons,
	})
}

func (s *Server) handleGetRenameScript(w http.ResponseWriter, r *http.Request) {
	workflow, err := s.store.LoadWorkflow()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load workflow")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"script":   renamescript.Snippet(),
		"workflow": workflow,
	})
}

func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflow, err := s.store.LoadWorkflow()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load workflow")
		return
	}
	RespondWithJSON(w, http.StatusOK, workflow)
}

func (s *Server) handleUpdateWorkflow(w http.ResponseWriter, r *http.Request) {
	var payload renamescript.Workflow
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Enabled {
		if ok, msg := shelf.ValidateName(payload.Stage1); !ok {
			RespondWithError(w, http.StatusBadRequest, "Invalid stage 1 shelf: "+msg)
			return
		}
		if ok, msg := shelf.ValidateName(payload.Stage2); !ok {
			RespondWithError(w, http.StatusBadRequest, "Invalid stage 2 shelf: "+msg)
			return
		}
	}

	if err := s.store.SaveWorkflow(payload); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to save workflow")
		return
	}
	RespondWithJSON(w, http.StatusOK, payload)
}
