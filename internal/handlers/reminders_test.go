package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oneline/internal/services"
	"oneline/internal/storage"
)

type recordingMailer struct {
	sent int
	last string
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, html string) error {
	m.sent++
	m.last = to
	return nil
}

func newRemindersRouter(t *testing.T) (http.Handler, *recordingMailer) {
	t.Helper()
	store, err := storage.OpenLocal(t.TempDir())
	require.NoError(t, err)
	mailer := &recordingMailer{}
	svc := services.NewReminderService(store, mailer, zap.NewNop())
	h := NewRemindersHandler(svc, "sekrit")

	mux := chi.NewRouter()
	mux.Post("/api/reminders/run", h.Run)
	return mux, mailer
}

func serviceRun(t *testing.T, h http.Handler, key, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reminders/run", strings.NewReader(body))
	if key != "" {
		req.Header.Set("X-Service-Key", key)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRemindersRejectsBadServiceKey(t *testing.T) {
	r, mailer := newRemindersRouter(t)

	w := serviceRun(t, r, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = serviceRun(t, r, "wrong", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, mailer.sent)
}

func TestRemindersTestSend(t *testing.T) {
	r, mailer := newRemindersRouter(t)

	w := serviceRun(t, r, "sekrit", `{"is_test":true,"email":"ada@example.com","user_name":"Ada"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "ada@example.com", mailer.last)
}

func TestRemindersTestSendWithoutEmailFails(t *testing.T) {
	r, mailer := newRemindersRouter(t)

	w := serviceRun(t, r, "sekrit", `{"is_test":true}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "requires an email")
	assert.Zero(t, mailer.sent)
}

func TestRemindersEmptyBodySweeps(t *testing.T) {
	r, mailer := newRemindersRouter(t)

	// Fresh local store: notifications are off, so the sweep matches nobody.
	w := serviceRun(t, r, "sekrit", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"processed":0`)
	assert.Zero(t, mailer.sent)
}
