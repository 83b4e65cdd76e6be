package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneline/internal/models"
)

func entry(date, line, mood string, ts int64) models.Entry {
	return models.Entry{ID: date, Date: date, Line: line, Mood: mood, Timestamp: ts}
}

func TestGetMissingDateIsAbsentNotError(t *testing.T) {
	s := NewStore(nil)
	_, ok := s.Get("2025-06-01")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestUpsertReplacesWholeEntry(t *testing.T) {
	s := NewStore(nil)
	s = s.Upsert(entry("2025-06-01", "first draft", "good", 100))
	s = s.Upsert(entry("2025-06-01", "second thoughts", "bad", 200))

	got, ok := s.Get("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, "second thoughts", got.Line)
	assert.Equal(t, "bad", got.Mood)
	assert.Equal(t, int64(200), got.Timestamp)
	assert.Equal(t, 1, s.Len())
}

func TestUpsertIsIdempotent(t *testing.T) {
	e := entry("2025-06-01", "same line", "neutral", 100)
	once := NewStore(nil).Upsert(e)
	twice := once.Upsert(e)
	assert.Equal(t, once.List(ByDateAsc), twice.List(ByDateAsc))
}

func TestUpsertIsPure(t *testing.T) {
	before := NewStore([]models.Entry{entry("2025-06-01", "kept", "good", 100)})
	after := before.Upsert(entry("2025-06-02", "new day", "low", 200))

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, after.Len())
	_, ok := before.Get("2025-06-02")
	assert.False(t, ok)
}

func TestNewStoreIndexesByDate(t *testing.T) {
	s := NewStore([]models.Entry{
		entry("2025-02-10", "feb", "bad", 10),
		entry("2025-03-05", "mar", "bad", 20),
		{Date: "2025-01-01", Line: "no id set", Mood: "good", Timestamp: 5},
	})
	got, ok := s.Get("2025-01-01")
	require.True(t, ok)
	assert.Equal(t, "2025-01-01", got.ID)
}

func TestListOrders(t *testing.T) {
	s := NewStore([]models.Entry{
		entry("2025-03-05", "later day, older save", "good", 10),
		entry("2025-01-20", "earlier day, newest save", "low", 30),
		entry("2025-02-10", "middle", "bad", 20),
	})

	byDate := s.List(ByDateAsc)
	assert.Equal(t, []string{"2025-01-20", "2025-02-10", "2025-03-05"},
		[]string{byDate[0].Date, byDate[1].Date, byDate[2].Date})

	recent := s.List(ByTimestampDesc)
	assert.Equal(t, []string{"2025-01-20", "2025-02-10", "2025-03-05"},
		[]string{recent[0].Date, recent[1].Date, recent[2].Date})
	assert.Equal(t, int64(30), recent[0].Timestamp)
}

func TestFilterAndsMoodAndMonth(t *testing.T) {
	s := NewStore([]models.Entry{
		entry("2025-02-14", "february bad day", "bad", 10),
		entry("2025-03-14", "march bad day", "bad", 20),
		entry("2025-02-20", "february good day", "good", 30),
	})

	got := s.Filter(FilterOptions{Mood: "bad", Month: 1})
	require.Len(t, got, 1)
	assert.Equal(t, "2025-02-14", got[0].Date)

	all := s.Filter(FilterOptions{Mood: "", Month: NoMonthFilter})
	assert.Len(t, all, 3)
	// No-filter listing keeps recency order.
	assert.Equal(t, "2025-02-20", all[0].Date)

	moodOnly := s.Filter(FilterOptions{Mood: "bad", Month: NoMonthFilter})
	assert.Len(t, moodOnly, 2)

	monthOnly := s.Filter(FilterOptions{Mood: "", Month: 1})
	assert.Len(t, monthOnly, 2)
}

func TestClearEmptiesTheStore(t *testing.T) {
	s := NewStore([]models.Entry{
		entry("2025-02-14", "one", "bad", 10),
		entry("2025-03-14", "two", "bad", 20),
	})
	cleared := s.Clear()
	assert.Empty(t, cleared.List(ByDateAsc))
	// The erase is a new snapshot; the prior one is untouched.
	assert.Equal(t, 2, s.Len())
}
