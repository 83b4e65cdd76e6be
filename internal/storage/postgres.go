package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"oneline/internal/journal"
	"oneline/internal/models"
	"oneline/internal/services"
)

// Postgres is the cloud-variant store: entries are rows keyed
// (user_id, local_date), settings are a single profile row per user, every
// write is an idempotent upsert, and reads are filtered by user id. Journal
// lines and emails are sealed before they leave the process.
type Postgres struct {
	db  *sqlx.DB
	enc *services.EncryptionService
}

func NewPostgres(db *sqlx.DB, enc *services.EncryptionService) *Postgres {
	return &Postgres{db: db, enc: enc}
}

// DB exposes the underlying handle for the auth handler's user queries.
func (p *Postgres) DB() *sqlx.DB { return p.db }

func (p *Postgres) LoadEntries(ctx context.Context, userID int) ([]models.Entry, error) {
	rows, err := p.db.QueryxContext(ctx,
		`SELECT local_date, journal_line, mood, saved_at_ms FROM entries WHERE user_id=$1 ORDER BY local_date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Entry
	for rows.Next() {
		var d time.Time
		var e models.Entry
		if err := rows.Scan(&d, &e.Line, &e.Mood, &e.Timestamp); err != nil {
			return nil, err
		}
		if err := p.enc.DecryptEntry(&e); err != nil {
			return nil, err
		}
		e.Date = d.Format(journal.DateKeyLayout)
		e.ID = e.Date
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) GetEntry(ctx context.Context, userID int, date string) (models.Entry, bool, error) {
	day, err := time.Parse(journal.DateKeyLayout, date)
	if err != nil {
		return models.Entry{}, false, err
	}
	var e models.Entry
	err = p.db.QueryRowxContext(ctx,
		`SELECT journal_line, mood, saved_at_ms FROM entries WHERE user_id=$1 AND local_date=$2`,
		userID, day).Scan(&e.Line, &e.Mood, &e.Timestamp)
	if err == sql.ErrNoRows {
		return models.Entry{}, false, nil
	}
	if err != nil {
		return models.Entry{}, false, err
	}
	if err := p.enc.DecryptEntry(&e); err != nil {
		return models.Entry{}, false, err
	}
	e.Date = date
	e.ID = date
	return e, true, nil
}

func (p *Postgres) UpsertEntry(ctx context.Context, userID int, e models.Entry) error {
	day, err := time.Parse(journal.DateKeyLayout, e.Date)
	if err != nil {
		return err
	}
	if err := p.enc.EncryptEntry(&e); err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO entries (user_id, local_date, journal_line, mood, saved_at_ms, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (user_id, local_date)
		 DO UPDATE SET
		   journal_line = EXCLUDED.journal_line,
		   mood = EXCLUDED.mood,
		   saved_at_ms = EXCLUDED.saved_at_ms,
		   updated_at = NOW()`,
		userID, day, e.Line, e.Mood, e.Timestamp)
	return err
}

func (p *Postgres) ClearEntries(ctx context.Context, userID int) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM entries WHERE user_id=$1`, userID)
	return err
}

func (p *Postgres) LoadSettings(ctx context.Context, userID int) (models.Settings, error) {
	s := journal.DefaultSettings()

	var moodsJSON string
	err := p.db.QueryRowxContext(ctx,
		`SELECT user_name, reminder_time, notifications_enabled, moods, timezone FROM profiles WHERE user_id=$1`,
		userID).Scan(&s.UserName, &s.ReminderTime, &s.NotificationsEnabled, &moodsJSON, &s.Timezone)
	if err != nil && err != sql.ErrNoRows {
		return models.Settings{}, err
	}
	if err == nil && moodsJSON != "" {
		var moods []models.Mood
		if uerr := json.Unmarshal([]byte(moodsJSON), &moods); uerr == nil && len(moods) > 0 {
			s.Moods = moods
		}
	}

	var sealedEmail string
	if err := p.db.QueryRowxContext(ctx, `SELECT email FROM users WHERE id=$1`, userID).Scan(&sealedEmail); err == nil {
		if email, derr := p.enc.DecryptEmail(sealedEmail); derr == nil {
			s.Email = email
		}
	}
	return s, nil
}

func (p *Postgres) SaveSettings(ctx context.Context, userID int, s models.Settings) error {
	moodsJSON, err := json.Marshal(s.Moods)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, user_name, reminder_time, notifications_enabled, moods, timezone, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW())
		 ON CONFLICT (user_id)
		 DO UPDATE SET
		   user_name = EXCLUDED.user_name,
		   reminder_time = EXCLUDED.reminder_time,
		   notifications_enabled = EXCLUDED.notifications_enabled,
		   moods = EXCLUDED.moods,
		   timezone = EXCLUDED.timezone,
		   updated_at = NOW()`,
		userID, s.UserName, s.ReminderTime, s.NotificationsEnabled, string(moodsJSON), s.Timezone)
	return err
}

func (p *Postgres) ReminderProfiles(ctx context.Context) ([]models.ReminderProfile, error) {
	rows, err := p.db.QueryxContext(ctx,
		`SELECT p.user_id, u.email, p.user_name, p.reminder_time, p.timezone
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.notifications_enabled = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ReminderProfile
	for rows.Next() {
		var rp models.ReminderProfile
		if err := rows.StructScan(&rp); err != nil {
			return nil, err
		}
		email, derr := p.enc.DecryptEmail(rp.Email)
		if derr != nil || email == "" {
			continue
		}
		rp.Email = email
		out = append(out, rp)
	}
	return out, rows.Err()
}

func (p *Postgres) Close() error { return p.db.Close() }
