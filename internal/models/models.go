package models

import "time"

type User struct {
	ID              int       `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"` // Encrypted in DB
	EmailBlindIndex string    `db:"email_blind_index" json:"-"`
	PasswordHash    string    `db:"password_hash" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Entry is one journal line for one calendar day. Date doubles as the
// unique key within a user's journal, so ID carries the same value.
type Entry struct {
	ID        string `db:"-" json:"id"`
	Date      string `db:"local_date" json:"date"`           // YYYY-MM-DD
	Line      string `db:"journal_line" json:"journal_line"` // Encrypted in DB (cloud)
	Mood      string `db:"mood" json:"mood"`
	Timestamp int64  `db:"saved_at_ms" json:"timestamp"` // ms since epoch
}

type Mood struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// Settings is replaced wholesale on every update; there is no field-level
// patching at the persistence boundary.
type Settings struct {
	UserName             string `json:"userName"`
	ReminderTime         string `json:"reminderTime"` // HH:mm
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Moods                []Mood `json:"moods"`
	Email                string `json:"email,omitempty"`
	Timezone             string `json:"timezone,omitempty"`
}

// ReminderProfile is the slice of a user's settings the sweep needs.
type ReminderProfile struct {
	UserID       int    `db:"user_id"`
	Email        string `db:"email"`
	UserName     string `db:"user_name"`
	ReminderTime string `db:"reminder_time"`
	Timezone     string `db:"timezone"`
}
