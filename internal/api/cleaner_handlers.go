// Handlers for the title cleaner settings: reading and updating the
// pattern list and whitelist, per-field undo, and a preview endpoint
// that cleans a single title with the stored configuration.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shelftag/shelftag/internal/store"
	"github.com/shelftag/shelftag/internal/titleclean"
)

func (s *Server) handleGetCleanerSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.LoadCleanerSettings()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load cleaner settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patterns":           settings.Patterns,
		"whitelist":          settings.Whitelist,
		"only_soundtrack":    settings.OnlySoundtrack,
		"can_undo_patterns":  s.patternHist.CanUndo(),
		"can_undo_whitelist": s.whitelistHist.CanUndo(),
	})
}

func (s *Server) handleUpdateCleanerSettings(w http.ResponseWriter, r *http.Request) {
	var payload store.CleanerSettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	previous, err := s.store.LoadCleanerSettings()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load cleaner settings")
		return
	}

	if err := s.store.SaveCleanerSettings(&payload); err != nil {
		var patternErr *titleclean.PatternError
		if errors.As(err, &patternErr) {
			// An invalid pattern rejects the whole save so the stored
			// configuration is always usable by the scanner.
			RespondWithError(w, http.StatusBadRequest, patternErr.Error())
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to save cleaner settings")
		return
	}

	// Snapshot the previous values so the edit can be rolled back.
	if !equalStrings(previous.Patterns, payload.Patterns) {
		s.patternHist.Push(previous.Patterns)
	}
	if previous.Whitelist != payload.Whitelist {
		s.whitelistHist.Push(previous.Whitelist)
	}

	RespondWithJSON(w, http.StatusOK, payload)
}

func (s *Server) handleUndoCleanerSettings(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Field string `json:"field"` // "patterns" or "whitelist"
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	settings, err := s.store.LoadCleanerSettings()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load cleaner settings")
		return
	}

	switch payload.Field {
	case "patterns":
		previous, ok := s.patternHist.Undo()
		if !ok {
			RespondWithError(w, http.StatusNotFound, "Nothing to undo")
			return
		}
		settings.Patterns = previous
	case "whitelist":
		previous, ok := s.whitelistHist.Undo()
		if !ok {
			RespondWithError(w, http.StatusNotFound, "Nothing to undo")
			return
		}
		settings.Whitelist = previous
	default:
		RespondWithError(w, http.StatusBadRequest, "Unknown field: "+payload.Field)
		return
	}

	if err := s.store.SaveCleanerSettings(settings); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to save cleaner settings")
		return
	}

	RespondWithJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePreviewClean(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string `json:"title"`
		ReleaseType string `json:"release_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	settings, err := s.store.LoadCleanerSettings()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to load cleaner settings")
		return
	}
	rules, err := settings.RuleSet()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Stored cleaner patterns are invalid")
		return
	}

	isSoundtrack := strings.Contains(strings.ToLower(payload.ReleaseType), "soundtrack")
	cleaned := rules.Clean(payload.Title, settings.OnlySoundtrack, isSoundtrack)

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"original":    payload.Title,
		"cleaned":     cleaned,
		"changed":     cleaned != payload.Title,
		"whitelisted": rules.Whitelisted(payload.Title),
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
