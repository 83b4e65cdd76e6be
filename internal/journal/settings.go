package journal

import (
	"time"

	"oneline/internal/models"
)

// DefaultSettings returns the record a brand-new journal starts with.
func DefaultSettings() models.Settings {
	return models.Settings{
		UserName:             "Journaler",
		ReminderTime:         "21:00",
		NotificationsEnabled: false,
		Moods:                DefaultCatalog(),
	}
}

// SettingsPatch carries field-level overrides. Nil fields keep the prior
// value; Moods is replaced only when non-nil.
type SettingsPatch struct {
	UserName             *string
	ReminderTime         *string
	NotificationsEnabled *bool
	Moods                []models.Mood
	Email                *string
	Timezone             *string
}

// ApplyPatch builds the next full settings record from the prior one. The
// record itself is always replaced wholesale downstream; the patch only
// exists so callers can change one field without restating the rest.
func ApplyPatch(prev models.Settings, p SettingsPatch) models.Settings {
	next := prev
	if p.UserName != nil {
		next.UserName = *p.UserName
	}
	if p.ReminderTime != nil {
		next.ReminderTime = *p.ReminderTime
	}
	if p.NotificationsEnabled != nil {
		next.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.Moods != nil {
		next.Moods = p.Moods
	}
	if p.Email != nil {
		next.Email = *p.Email
	}
	if p.Timezone != nil {
		next.Timezone = *p.Timezone
	}
	return next
}

// NormalizeTimezone resolves the empty and "UTC" sentinel values to the
// system zone when it carries a concrete IANA name.
func NormalizeTimezone(tz string) string {
	if tz != "" && tz != "UTC" {
		return tz
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	return "UTC"
}
