package journal

import (
	"fmt"
	"sort"
	"strings"

	"oneline/internal/models"
)

// ToCSV renders entries as the export document: a Date,Mood,Entry,Color
// header followed by one row per entry, ascending by date. The Entry column
// is always quoted with embedded quotes doubled; Mood and Color resolve
// through the catalog, falling back to the raw mood id and an empty color
// when the id is no longer in the catalog. Output depends only on the
// inputs, byte for byte.
func ToCSV(entries []models.Entry, catalog Catalog) []byte {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var b strings.Builder
	b.WriteString("Date,Mood,Entry,Color")
	for _, e := range sorted {
		label := e.Mood
		color := ""
		if m, ok := catalog.Resolve(e.Mood); ok {
			label = m.Label
			color = m.Color
		}
		line := `"` + strings.ReplaceAll(e.Line, `"`, `""`) + `"`
		b.WriteString("\n" + e.Date + "," + label + "," + line + "," + color)
	}
	return []byte(b.String())
}

// ExportFilename suggests the download name for an export taken this year.
func ExportFilename(year int) string {
	return fmt.Sprintf("one-line-journal-%d.csv", year)
}
