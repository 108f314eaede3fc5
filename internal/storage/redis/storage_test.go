package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/model"
)

func newTestStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewWithClient(client, DefaultConfig()), mr
}

func TestSessionRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	sess := &model.Session{
		Token:        "sess_abc",
		UserID:       "user-1",
		AccessToken:  "jwt-access",
		RefreshToken: "jwt-refresh",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, s.SaveSession(ctx, sess))

	got, err := s.GetSession(ctx, "sess_abc")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.AccessToken, got.AccessToken)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))
}

func TestGetSessionMissing(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &model.Session{Token: "sess_abc", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.DeleteSession(ctx, "sess_abc"))

	_, err := s.GetSession(ctx, "sess_abc")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSessionExpiresWithTTL(t *testing.T) {
	s, mr := newTestStorage(t)
	ctx := context.Background()

	sess := &model.Session{
		Token:     "sess_abc",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	require.NoError(t, s.SaveSession(ctx, sess))

	// Past the session expiry the key must be gone
	mr.FastForward(31 * time.Minute)

	_, err := s.GetSession(ctx, "sess_abc")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
