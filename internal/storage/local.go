package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"oneline/internal/journal"
	"oneline/internal/models"
)

// Snapshot keys, matching the names the browser build kept in localStorage.
const (
	entriesKey  = "one-line-entries"
	settingsKey = "one-line-settings"
)

// Local is the single-user durable store: two named JSON snapshots in an
// on-disk key-value store, read once at startup and written back after
// every change. The user id arguments of the Store contract are ignored.
type Local struct {
	d *diskv.Diskv

	mu       sync.Mutex
	store    journal.Store
	settings models.Settings
}

// DefaultDataDir is where the local variant keeps its snapshots unless
// ONELINE_DATA_DIR says otherwise.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oneline"
	}
	return filepath.Join(home, ".oneline")
}

// OpenLocal hydrates the in-memory snapshots from disk. Missing keys are not
// errors; they mean a brand-new journal.
func OpenLocal(basePath string) (*Local, error) {
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})

	l := &Local{d: d, store: journal.NewStore(nil), settings: journal.DefaultSettings()}

	if raw, err := d.Read(entriesKey); err == nil {
		byDate := map[string]models.Entry{}
		if err := json.Unmarshal(raw, &byDate); err != nil {
			return nil, fmt.Errorf("corrupt entries snapshot: %w", err)
		}
		entries := make([]models.Entry, 0, len(byDate))
		for date, e := range byDate {
			e.Date = date
			entries = append(entries, e)
		}
		l.store = journal.NewStore(entries)
	}

	if raw, err := d.Read(settingsKey); err == nil {
		var s models.Settings
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("corrupt settings snapshot: %w", err)
		}
		if s.Moods == nil {
			s.Moods = journal.DefaultCatalog()
		}
		l.settings = s
	}

	return l, nil
}

func (l *Local) writeEntries(next journal.Store) error {
	byDate := map[string]models.Entry{}
	for _, e := range next.List(journal.ByDateAsc) {
		byDate[e.Date] = e
	}
	raw, err := json.Marshal(byDate)
	if err != nil {
		return err
	}
	if err := l.d.Write(entriesKey, raw); err != nil {
		return err
	}
	// Only adopt the new snapshot once it is durable.
	l.store = next
	return nil
}

func (l *Local) LoadEntries(ctx context.Context, userID int) ([]models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.List(journal.ByDateAsc), nil
}

func (l *Local) GetEntry(ctx context.Context, userID int, date string) (models.Entry, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.store.Get(date)
	return e, ok, nil
}

func (l *Local) UpsertEntry(ctx context.Context, userID int, e models.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writeEntries(l.store.Upsert(e))
}

func (l *Local) ClearEntries(ctx context.Context, userID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writeEntries(l.store.Clear())
}

func (l *Local) LoadSettings(ctx context.Context, userID int) (models.Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings, nil
}

func (l *Local) SaveSettings(ctx context.Context, userID int, s models.Settings) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := l.d.Write(settingsKey, raw); err != nil {
		return err
	}
	l.settings = s
	return nil
}

func (l *Local) ReminderProfiles(ctx context.Context) ([]models.ReminderProfile, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.settings
	if !s.NotificationsEnabled || s.Email == "" {
		return nil, nil
	}
	return []models.ReminderProfile{{
		UserID:       0,
		Email:        s.Email,
		UserName:     s.UserName,
		ReminderTime: s.ReminderTime,
		Timezone:     s.Timezone,
	}}, nil
}

func (l *Local) Close() error { return nil }
