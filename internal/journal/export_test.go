package journal

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneline/internal/models"
)

func TestToCSVSortsAndResolvesMoods(t *testing.T) {
	catalog := DefaultCatalog()
	entries := []models.Entry{
		entry("2025-03-05", "a calm walk", "good", 20),
		entry("2025-01-20", "slow morning", "low", 30),
	}

	out := string(ToCSV(entries, catalog))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Mood,Entry,Color", lines[0])
	assert.Equal(t, `2025-01-20,Tired,"slow morning",#B794F4`, lines[1])
	assert.Equal(t, `2025-03-05,Content,"a calm walk",#68D391`, lines[2])
}

func TestToCSVQuoteEscapingRoundTrips(t *testing.T) {
	line := `she said "enough" and left`
	out := ToCSV([]models.Entry{entry("2025-06-01", line, "bad", 1)}, DefaultCatalog())

	r := csv.NewReader(strings.NewReader(string(out)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, line, rows[1][2])
}

func TestToCSVUnknownMoodFallsBack(t *testing.T) {
	out := string(ToCSV([]models.Entry{entry("2025-06-01", "old times", "archived-mood", 1)}, DefaultCatalog()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2025-06-01,archived-mood,"old times",`, lines[1])
}

func TestToCSVIsDeterministic(t *testing.T) {
	entries := []models.Entry{
		entry("2025-03-05", "b", "good", 20),
		entry("2025-01-20", "a", "low", 30),
		entry("2025-02-11", "c", "great", 10),
	}
	assert.Equal(t, ToCSV(entries, DefaultCatalog()), ToCSV(entries, DefaultCatalog()))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "one-line-journal-2025.csv", ExportFilename(2025))
}
