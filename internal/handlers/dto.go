package handlers

import (
	"encoding/json"
	"net/http"

	"oneline/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// entryLookupResponse carries a point lookup. Entry is null when the day has
// no line yet; that is the empty state, not an error.
type entryLookupResponse struct {
	Date    string        `json:"date"`
	Display string        `json:"display"`
	Entry   *models.Entry `json:"entry"`
}
