package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"oneline/internal/journal"
	"oneline/internal/models"
	"oneline/internal/storage"
)

type EntriesHandler struct {
	store storage.Store
}

func NewEntriesHandler(store storage.Store) *EntriesHandler {
	return &EntriesHandler{store: store}
}

type entryRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
	Line string `json:"journal_line"`
	Mood string `json:"mood"`
}

// Upsert creates or replaces the entry for one calendar day. The line cap
// and the non-empty checks live here, at the point of creation; the store
// never re-validates them.
func (h *EntriesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = journal.TodayKey()
	}
	if _, err := time.Parse(journal.DateKeyLayout, req.Date); err != nil {
		http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if req.Line == "" || req.Mood == "" {
		http.Error(w, "journal_line and mood required", http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(req.Line) > journal.MaxLineLength {
		http.Error(w, "journal_line exceeds 150 characters", http.StatusBadRequest)
		return
	}

	// The mood id is a soft reference; it is not checked against the
	// current catalog.
	e := models.Entry{
		ID:        req.Date,
		Date:      req.Date,
		Line:      req.Line,
		Mood:      req.Mood,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := h.store.UpsertEntry(r.Context(), userID, e); err != nil {
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Entry saved successfully", "entry": e})
}

// List returns entries, newest save first by default. Optional query
// params: order=date|recent, mood=<id>, month=<0-11>; mood and month are
// ANDed.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	q := r.URL.Query()

	entries, err := h.store.LoadEntries(r.Context(), userID)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	snapshot := journal.NewStore(entries)

	mood := q.Get("mood")
	month := journal.NoMonthFilter
	if raw := q.Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 0 || m > 11 {
			http.Error(w, "invalid month; expected 0-11", http.StatusBadRequest)
			return
		}
		month = m
	}

	var out []models.Entry
	if mood != "" || month != journal.NoMonthFilter {
		out = snapshot.Filter(journal.FilterOptions{Mood: mood, Month: month})
	} else if q.Get("order") == "date" {
		out = snapshot.List(journal.ByDateAsc)
	} else {
		out = snapshot.List(journal.ByTimestampDesc)
	}
	writeJSON(w, http.StatusOK, out)
}

// Today returns the current local day and its entry, if any.
func (h *EntriesHandler) Today(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, journal.TodayKey())
}

// ByDate returns one day's entry. An absent entry is a 200 with a null
// entry, never a 404.
func (h *EntriesHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(journal.DateKeyLayout, date); err != nil {
		http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	h.lookup(w, r, date)
}

func (h *EntriesHandler) lookup(w http.ResponseWriter, r *http.Request, date string) {
	userID := r.Context().Value("userID").(int)
	resp := entryLookupResponse{Date: date, Display: journal.FormatDisplay(date)}
	e, ok, err := h.store.GetEntry(r.Context(), userID, date)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	if ok {
		resp.Entry = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

// Clear erases every entry. It is the only destructive operation in the
// system and refuses to run without confirm=true.
func (h *EntriesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "confirmation required; pass confirm=true to erase all entries", http.StatusBadRequest)
		return
	}
	if err := h.store.ClearEntries(r.Context(), userID); err != nil {
		http.Error(w, "could not delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the journal as a CSV download.
func (h *EntriesHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)
	entries, err := h.store.LoadEntries(r.Context(), userID)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	settings, err := h.store.LoadSettings(r.Context(), userID)
	if err != nil {
		http.Error(w, "could not fetch settings", http.StatusInternalServerError)
		return
	}

	body := journal.ToCSV(entries, journal.Catalog(settings.Moods))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+journal.ExportFilename(time.Now().Year())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
