package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRejectsMissingConfiguration(t *testing.T) {
	m := NewMailer("", "", zerolog.Nop())

	err := m.Send(context.Background(), "Hello", "<p>hi</p>", nil)
	assert.Error(t, err)

	err = m.Send(context.Background(), "Hello", "<p>hi</p>", []string{"dana@example.com"})
	assert.Error(t, err)
}

func TestSendPostsResendPayload(t *testing.T) {
	var received ResendEmailRequest
	var authorization string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email-123"})
	}))
	defer srv.Close()

	m := NewMailer("test-key", "no-reply@taskdeck.app", zerolog.Nop())
	m.endpoint = srv.URL

	err := m.Send(context.Background(), "Password reset", "<p>code</p>", []string{"dana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", authorization)
	assert.Equal(t, "no-reply@taskdeck.app", received.From)
	assert.Equal(t, []string{"dana@example.com"}, received.To)
	assert.Equal(t, "Password reset", received.Subject)
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ResendErrorResponse{Message: "invalid recipient"})
	}))
	defer srv.Close()

	m := NewMailer("test-key", "no-reply@taskdeck.app", zerolog.Nop())
	m.endpoint = srv.URL

	err := m.Send(context.Background(), "Hello", "<p>hi</p>", []string{"bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}
