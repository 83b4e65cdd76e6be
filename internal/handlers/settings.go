package handlers

import (
	"encoding/json"
	"net/http"

	"oneline/internal/journal"
	"oneline/internal/models"
	"oneline/internal/storage"
)

type SettingsHandler struct {
	store storage.Store
}

func NewSettingsHandler(store storage.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	s, err := h.store.LoadSettings(r.Context(), userID)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Replace swaps the whole settings record. Clients send the full object
// with whatever single field they changed; there is no partial patching
// here. The core performs no field-level validation beyond keeping the mood
// catalog non-empty and resolving the timezone sentinel.
func (h *SettingsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var s models.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if len(s.Moods) == 0 {
		s.Moods = journal.DefaultCatalog()
	}
	s.Timezone = journal.NormalizeTimezone(s.Timezone)

	if err := h.store.SaveSettings(r.Context(), userID, s); err != nil {
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
