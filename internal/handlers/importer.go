package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"oneline/internal/journal"
	"oneline/internal/models"
	"oneline/internal/storage"
)

// ImportHandler moves a journal kept in the local variant into the cloud
// account: the client posts its two snapshots and every entry becomes an
// idempotent per-date upsert, so re-running an interrupted import is safe.
type ImportHandler struct {
	store storage.Store
}

func NewImportHandler(store storage.Store) *ImportHandler {
	return &ImportHandler{store: store}
}

type importRequest struct {
	Entries  []models.Entry   `json:"entries"`
	Settings *models.Settings `json:"settings"`
}

func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	imported, skipped := 0, 0
	for _, e := range req.Entries {
		if _, err := time.Parse(journal.DateKeyLayout, e.Date); err != nil {
			skipped++
			continue
		}
		if e.Line == "" || e.Mood == "" {
			skipped++
			continue
		}
		if e.Timestamp == 0 {
			e.Timestamp = time.Now().UnixMilli()
		}
		e.ID = e.Date
		if err := h.store.UpsertEntry(r.Context(), userID, e); err != nil {
			http.Error(w, "could not save entries", http.StatusInternalServerError)
			return
		}
		imported++
	}

	settingsUpdated := false
	if req.Settings != nil {
		s := *req.Settings
		if len(s.Moods) == 0 {
			s.Moods = journal.DefaultCatalog()
		}
		s.Timezone = journal.NormalizeTimezone(s.Timezone)
		if err := h.store.SaveSettings(r.Context(), userID, s); err != nil {
			http.Error(w, "could not save settings", http.StatusInternalServerError)
			return
		}
		settingsUpdated = true
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"imported_entries": imported,
		"skipped_entries":  skipped,
		"settings_updated": settingsUpdated,
	})
}
