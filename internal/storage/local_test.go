package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oneline/internal/journal"
	"oneline/internal/models"
)

func TestLocalSnapshotsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	l, err := OpenLocal(dir)
	require.NoError(t, err)

	e := models.Entry{Date: "2025-06-01", Line: "first line", Mood: "good", Timestamp: 100}
	require.NoError(t, l.UpsertEntry(ctx, 0, e))

	s := journal.DefaultSettings()
	s.UserName = "Ada"
	s.NotificationsEnabled = true
	s.Email = "ada@example.com"
	require.NoError(t, l.SaveSettings(ctx, 0, s))
	require.NoError(t, l.Close())

	reopened, err := OpenLocal(dir)
	require.NoError(t, err)

	got, ok, err := reopened.GetEntry(ctx, 0, "2025-06-01")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first line", got.Line)
	assert.Equal(t, "2025-06-01", got.ID)

	settings, err := reopened.LoadSettings(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ada", settings.UserName)
	assert.Len(t, settings.Moods, 5)
}

func TestLocalStartsEmptyWithDefaults(t *testing.T) {
	l, err := OpenLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	entries, err := l.LoadEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, ok, err := l.GetEntry(ctx, 0, "2025-06-01")
	require.NoError(t, err)
	assert.False(t, ok)

	s, err := l.LoadSettings(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Journaler", s.UserName)
	assert.Equal(t, "21:00", s.ReminderTime)
}

func TestLocalUpsertReplacesSameDate(t *testing.T) {
	l, err := OpenLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, l.UpsertEntry(ctx, 0, models.Entry{Date: "2025-06-01", Line: "draft", Mood: "low", Timestamp: 1}))
	require.NoError(t, l.UpsertEntry(ctx, 0, models.Entry{Date: "2025-06-01", Line: "final", Mood: "great", Timestamp: 2}))

	entries, err := l.LoadEntries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "final", entries[0].Line)
}

func TestLocalClearEntries(t *testing.T) {
	l, err := OpenLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, l.UpsertEntry(ctx, 0, models.Entry{Date: "2025-06-01", Line: "x", Mood: "bad", Timestamp: 1}))
	require.NoError(t, l.ClearEntries(ctx, 0))

	entries, err := l.LoadEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalReminderProfiles(t *testing.T) {
	l, err := OpenLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Disabled by default.
	profiles, err := l.ReminderProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	s := journal.DefaultSettings()
	s.NotificationsEnabled = true
	s.Email = "ada@example.com"
	s.Timezone = "Europe/Berlin"
	require.NoError(t, l.SaveSettings(ctx, 0, s))

	profiles, err = l.ReminderProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "ada@example.com", profiles[0].Email)
	assert.Equal(t, "Europe/Berlin", profiles[0].Timezone)
}
