package supabase

import (
	"context"
	"time"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// AuthUser is the raw auth identity GoTrue creates at sign-up, distinct from
// the application-level profile row.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is an authenticated Supabase session as returned by GoTrue.
type AuthSession struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// SignUpResult is the outcome of the first sign-up step. Session is nil when
// GoTrue requires email confirmation before issuing tokens, which is the
// normal path here.
type SignUpResult struct {
	User    AuthUser
	Session *AuthSession
}

// Gateway is the remote data boundary: every read and write of domain data
// goes through it, one best-effort attempt per call. Failures surface as
// *model.RemoteError carrying the provider's message; nothing is retried.
//
// Whether the backend increments a tournament's current_players when a
// registration row is inserted is a backend contract; the gateway never
// writes that column, and the UI only observes new counts by refetching.
type Gateway interface {
	// ListTournaments returns all tournaments with their participants,
	// ordered ascending by start date.
	ListTournaments(ctx context.Context) ([]model.Tournament, error)

	// GetTournament returns a single tournament with participants, or
	// model.ErrTournamentNotFound.
	GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error)

	// GetProfile returns the profile for the session's identity, or
	// model.ErrProfileNotFound.
	GetProfile(ctx context.Context, sess *model.Session) (*model.Profile, error)

	// SignUpAuth creates the auth identity (sign-up step one).
	SignUpAuth(ctx context.Context, email, password, username string) (*SignUpResult, error)

	// InsertProfile creates the profile row (sign-up step two).
	// accessToken may be empty when GoTrue has not issued a session yet.
	InsertProfile(ctx context.Context, profile model.Profile, accessToken string) error

	// DeleteAuthUser removes an auth identity. Used only as the compensating
	// action when InsertProfile fails after SignUpAuth succeeded.
	DeleteAuthUser(ctx context.Context, userID string) error

	// SignInWithPassword exchanges credentials for a Supabase session.
	SignInWithPassword(ctx context.Context, email, password string) (*AuthSession, error)

	// InsertRegistration writes a registration row with payment_status
	// completed. Duplicates are rejected by the backend's uniqueness rules,
	// not pre-checked here.
	InsertRegistration(ctx context.Context, sess *model.Session, tournamentID model.TournamentID) error
}
