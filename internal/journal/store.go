package journal

import (
	"sort"
	"strconv"
	"strings"

	"oneline/internal/models"
)

// Order selects how List arranges entries.
type Order int

const (
	ByDateAsc Order = iota
	ByTimestampDesc
)

// FilterOptions narrows a listing. Zero values mean no filter; Month is a
// zero-based calendar month index, so the no-filter sentinel is -1.
type FilterOptions struct {
	Mood  string
	Month int
}

// NoMonthFilter is the Month value that matches every month.
const NoMonthFilter = -1

// Store is an immutable snapshot of a journal, indexed by date key. Mutating
// operations return a new snapshot; writing it through is the persistence
// layer's concern.
type Store struct {
	entries map[string]models.Entry
}

// NewStore hydrates a store from a snapshot, indexing every entry by its
// date. Later duplicates of a date win, matching upsert semantics.
func NewStore(entries []models.Entry) Store {
	m := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		e.ID = e.Date
		m[e.Date] = e
	}
	return Store{entries: m}
}

func (s Store) Len() int { return len(s.entries) }

// Get is a point lookup; a missing date is a normal outcome, not an error.
func (s Store) Get(date string) (models.Entry, bool) {
	e, ok := s.entries[date]
	return e, ok
}

// Upsert returns a new store holding e under its date key, replacing any
// prior entry for that day entirely. No field-level merging, no history.
func (s Store) Upsert(e models.Entry) Store {
	e.ID = e.Date
	m := make(map[string]models.Entry, len(s.entries)+1)
	for k, v := range s.entries {
		m[k] = v
	}
	m[e.Date] = e
	return Store{entries: m}
}

// Clear returns an empty store. Callers must have confirmed the erase with
// the user first; there is no undo.
func (s Store) Clear() Store {
	return Store{entries: map[string]models.Entry{}}
}

// List returns every entry in the requested order. Date keys are zero-padded
// ISO, so ascending-by-date is plain lexicographic order.
func (s Store) List(order Order) []models.Entry {
	out := make([]models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	switch order {
	case ByTimestampDesc:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Timestamp != out[j].Timestamp {
				return out[i].Timestamp > out[j].Timestamp
			}
			return out[i].Date > out[j].Date
		})
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	}
	return out
}

// Filter returns entries matching the ANDed mood and month conditions,
// most recent first.
func (s Store) Filter(opts FilterOptions) []models.Entry {
	out := make([]models.Entry, 0)
	for _, e := range s.List(ByTimestampDesc) {
		if opts.Mood != "" && e.Mood != opts.Mood {
			continue
		}
		if opts.Month != NoMonthFilter && entryMonthIndex(e.Date) != opts.Month {
			continue
		}
		out = append(out, e)
	}
	return out
}

func entryMonthIndex(date string) int {
	// YYYY-MM-DD; the middle field is the one-based month.
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return NoMonthFilter - 1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return NoMonthFilter - 1
	}
	return m - 1
}
