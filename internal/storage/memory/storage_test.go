package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/model"
)

func TestSessionRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	sess := &model.Session{
		Token:       "sess_abc",
		UserID:      "user-1",
		AccessToken: "jwt-access",
		CreatedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt:   time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveSession(ctx, sess))

	got, err := s.GetSession(ctx, "sess_abc")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestGetSessionMissing(t *testing.T) {
	s := New()

	_, err := s.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &model.Session{Token: "sess_abc"}))
	require.NoError(t, s.DeleteSession(ctx, "sess_abc"))

	_, err := s.GetSession(ctx, "sess_abc")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestGetSessionReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &model.Session{Token: "sess_abc", UserID: "user-1"}))

	got, err := s.GetSession(ctx, "sess_abc")
	require.NoError(t, err)
	got.UserID = "mutated"

	again, err := s.GetSession(ctx, "sess_abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", again.UserID)
}
