package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"oneline/internal/services"
)

// RemindersHandler fronts the reminder trigger. An external scheduler calls
// Run once a minute; the settings screen calls it with is_test for an
// immediate send. Both are guarded by the service key, never by user JWTs.
type RemindersHandler struct {
	svc        *services.ReminderService
	serviceKey string
}

func NewRemindersHandler(svc *services.ReminderService, serviceKey string) *RemindersHandler {
	return &RemindersHandler{svc: svc, serviceKey: serviceKey}
}

type runRequest struct {
	IsTest   bool   `json:"is_test"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
}

func (h *RemindersHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.serviceKey == "" {
		http.Error(w, "reminder trigger is not configured", http.StatusServiceUnavailable)
		return
	}
	if subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Service-Key")), []byte(h.serviceKey)) != 1 {
		http.Error(w, "invalid service key", http.StatusUnauthorized)
		return
	}

	// An empty body is a plain sweep; don't fail the cron on it.
	var req runRequest
	if raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<16)); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
	}

	if req.IsTest {
		if err := h.svc.SendTest(r.Context(), req.Email, req.UserName); err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	processed, err := h.svc.Sweep(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{"processed": processed, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"processed": processed})
}
