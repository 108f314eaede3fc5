package session

import (
	"context"
	"errors"
	"time"

	"github.com/gamingleague/tournaments-web/internal/dependencies/clock"
	"github.com/gamingleague/tournaments-web/internal/dependencies/random"
	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/storage"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// ErrInvalidSession is returned for unknown or expired session tokens.
var ErrInvalidSession = errors.New("invalid or expired session")

// Config holds configuration for the session service.
type Config struct {
	// Duration caps the local session lifetime. The Supabase access token's
	// own expiry wins when it is sooner.
	Duration time.Duration
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{Duration: 7 * 24 * time.Hour}
}

// Service mints and validates the local web sessions that carry a Supabase
// auth session across requests.
type Service struct {
	store    storage.Store
	clock    clock.Clock
	random   random.Random
	duration time.Duration
}

// New creates a session service.
func New(store storage.Store, clk clock.Clock, rnd random.Random, cfg Config) *Service {
	if cfg.Duration == 0 {
		cfg.Duration = DefaultConfig().Duration
	}
	return &Service{
		store:    store,
		clock:    clk,
		random:   rnd,
		duration: cfg.Duration,
	}
}

// Create mints a local session for a Supabase auth session and persists it.
func (s *Service) Create(ctx context.Context, auth *supabase.AuthSession) (*model.Session, error) {
	now := s.clock.Now()

	expiresAt := now.Add(s.duration)
	if !auth.ExpiresAt.IsZero() && auth.ExpiresAt.Before(expiresAt) {
		expiresAt = auth.ExpiresAt
	}

	sess := &model.Session{
		Token:        s.random.Token("sess_"),
		UserID:       auth.UserID,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get validates a session token. Expired sessions are removed and reported
// as invalid.
func (s *Service) Get(ctx context.Context, token string) (*model.Session, error) {
	sess, err := s.store.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(sess.ExpiresAt) {
		_ = s.store.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	return sess, nil
}

// Delete removes a session (logout).
func (s *Service) Delete(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}
