package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"oneline/internal/journal"
	"oneline/internal/models"
)

const (
	testSubject  = "Your Daily Journal Nudge (Test)"
	nudgeSubject = "Time for your one line."
)

// ProfileSource yields the opted-in reminder profiles. Both persistence
// variants satisfy it.
type ProfileSource interface {
	ReminderProfiles(ctx context.Context) ([]models.ReminderProfile, error)
}

// ReminderService dispatches the daily nudges. The sweep expects to be
// invoked at least once per minute by an external scheduler: a match is
// exact HH:mm equality in the user's zone, with no tolerance window.
type ReminderService struct {
	profiles ProfileSource
	mailer   Mailer
	log      *zap.Logger
	now      func() time.Time
}

func NewReminderService(profiles ProfileSource, mailer Mailer, log *zap.Logger) *ReminderService {
	return &ReminderService{profiles: profiles, mailer: mailer, log: log, now: time.Now}
}

// SendTest sends one immediate test mail to the given address.
func (s *ReminderService) SendTest(ctx context.Context, email, userName string) error {
	if email == "" {
		return errors.New("test send requires an email address")
	}
	return s.mailer.Send(ctx, email, testSubject, testEmailHTML(userName))
}

// Sweep compares every opted-in profile's reminder time against the current
// instant in that profile's zone and dispatches at most one mail per
// matching profile. It returns how many profiles matched; send failures are
// collected rather than aborting the rest of the sweep.
func (s *ReminderService) Sweep(ctx context.Context) (int, error) {
	profiles, err := s.profiles.ReminderProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not load reminder profiles: %w", err)
	}

	now := s.now()
	processed := 0
	var sendErrs []error
	for _, p := range profiles {
		if p.Email == "" || p.ReminderTime == "" {
			continue
		}
		tz := journal.NormalizeTimezone(p.Timezone)
		loc, err := time.LoadLocation(tz)
		if err != nil {
			s.log.Warn("skipping profile with unknown timezone",
				zap.Int("user_id", p.UserID), zap.String("timezone", tz))
			continue
		}
		if now.In(loc).Format("15:04") != p.ReminderTime {
			continue
		}
		processed++
		if err := s.mailer.Send(ctx, p.Email, nudgeSubject, nudgeEmailHTML(p.UserName)); err != nil {
			s.log.Error("reminder send failed", zap.Int("user_id", p.UserID), zap.Error(err))
			sendErrs = append(sendErrs, err)
		}
	}
	return processed, errors.Join(sendErrs...)
}

func greeting(userName string) string {
	if userName == "" {
		return "Journaler"
	}
	return userName
}

func testEmailHTML(userName string) string {
	return `<div style="font-family: serif; color: #2d3748; max-width: 400px; margin: 0 auto; padding: 40px; border: 1px solid #f3f4f6; border-radius: 20px;">` +
		`<h1 style="font-size: 24px; font-weight: normal; color: #a8a29e; margin-bottom: 24px;">ol.</h1>` +
		`<p style="font-size: 18px; font-style: italic;">Hi ` + greeting(userName) + `,</p>` +
		`<p style="line-height: 1.6;">This is a test of your daily one-line journaling reminder. Your connection is successful!</p>` +
		`<hr style="border: 0; border-top: 1px solid #f3f4f6; margin: 32px 0;" />` +
		`<p style="font-size: 12px; color: #a8a29e; text-transform: uppercase; letter-spacing: 0.2em;">Quietly Preserving Since 2024</p>` +
		`</div>`
}

func nudgeEmailHTML(userName string) string {
	return `<div style="font-family: serif; color: #2d3748; max-width: 400px; margin: 0 auto; padding: 40px; border: 1px solid #f3f4f6; border-radius: 20px;">` +
		`<h1 style="font-size: 24px; font-weight: normal; color: #a8a29e; margin-bottom: 24px;">ol.</h1>` +
		`<p style="font-size: 18px; font-style: italic;">Hi ` + greeting(userName) + `,</p>` +
		`<p style="line-height: 1.6;">The day is coming to a close. Take a moment to preserve just one line.</p>` +
		`<hr style="border: 0; border-top: 1px solid #f3f4f6; margin: 32px 0;" />` +
		`<p style="font-size: 10px; color: #a8a29e; text-transform: uppercase; letter-spacing: 0.2em;">You received this because you enabled daily nudges.</p>` +
		`</div>`
}
