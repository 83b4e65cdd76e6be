// Package storage holds the persistence adapters. The journal core only
// ever sees snapshots; everything durable goes through a Store.
package storage

import (
	"context"

	"oneline/internal/models"
)

// Store is the persistence contract shared by the local (diskv) and cloud
// (postgres) variants. A failed call returns an error and leaves the
// previously loaded state intact; callers keep serving the last-known-good
// snapshot.
type Store interface {
	LoadEntries(ctx context.Context, userID int) ([]models.Entry, error)
	GetEntry(ctx context.Context, userID int, date string) (models.Entry, bool, error)
	UpsertEntry(ctx context.Context, userID int, e models.Entry) error
	ClearEntries(ctx context.Context, userID int) error

	LoadSettings(ctx context.Context, userID int) (models.Settings, error)
	SaveSettings(ctx context.Context, userID int, s models.Settings) error

	ReminderProfiles(ctx context.Context) ([]models.ReminderProfile, error)

	Close() error
}
