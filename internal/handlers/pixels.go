package handlers

import (
	"net/http"
	"strconv"
	"time"

	"oneline/internal/journal"
	"oneline/internal/storage"
)

type PixelsHandler struct {
	store storage.Store
}

func NewPixelsHandler(store storage.Store) *PixelsHandler {
	return &PixelsHandler{store: store}
}

type pixelCell struct {
	Date     string `json:"date"`
	Color    string `json:"color"`
	HasEntry bool   `json:"has_entry"`
}

type pixelMonth struct {
	Month string      `json:"month"`
	Days  []pixelCell `json:"days"`
}

type pixelsResponse struct {
	Year   int          `json:"year"`
	Months []pixelMonth `json:"months"`
}

// Get renders one year as twelve rows of day cells, one color per day.
// Month lengths honor the Gregorian calendar including leap Februaries;
// days without an entry carry the empty color, and entries whose mood id
// left the catalog degrade to the unknown color rather than failing.
func (h *PixelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(int)

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = y
	}

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
	snapshot := journal.NewStore(entries)
	catalog := journal.Catalog(settings.Moods)

	resp := pixelsResponse{Year: year, Months: make([]pixelMonth, 0, 12)}
	for m := 0; m < 12; m++ {
		row := pixelMonth{Month: journal.MonthNames[m], Days: make([]pixelCell, 0, 31)}
		for day := 1; day <= journal.DaysInMonth(m, year); day++ {
			date := journal.DateKey(year, m, day)
			cell := pixelCell{Date: date, Color: journal.EmptyDayColor}
			if e, ok := snapshot.Get(date); ok {
				cell.HasEntry = true
				cell.Color = catalog.ResolveDisplay(e.Mood).Color
			}
			row.Days = append(row.Days, cell)
		}
		resp.Months = append(resp.Months, row)
	}
	writeJSON(w, http.StatusOK, resp)
}
