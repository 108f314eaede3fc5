package mocks

import (
	"context"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// MockGateway is an in-memory stand-in for the remote data gateway. Call
// counts and recorded writes let tests assert exactly which remote
// operations a workflow performed.
type MockGateway struct {
	Tournaments []model.Tournament
	ListErr     error
	ListCalls   int

	Profiles   map[string]*model.Profile
	ProfileErr error

	SignUpResult *supabase.SignUpResult
	SignUpErr    error
	SignUpCalls  int

	InsertProfileErr   error
	InsertedProfiles   []model.Profile
	InsertProfileCalls int

	DeletedUsers []string
	DeleteErr    error

	SignInSession *supabase.AuthSession
	SignInErr     error

	Registrations         []model.Registration
	InsertRegistrationErr error
}

var _ supabase.Gateway = (*MockGateway)(nil)

// NewMockGateway creates an empty MockGateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{Profiles: make(map[string]*model.Profile)}
}

func (g *MockGateway) ListTournaments(_ context.Context) ([]model.Tournament, error) {
	g.ListCalls++
	if g.ListErr != nil {
		return nil, g.ListErr
	}
	return g.Tournaments, nil
}

func (g *MockGateway) GetTournament(_ context.Context, id model.TournamentID) (*model.Tournament, error) {
	for i := range g.Tournaments {
		if g.Tournaments[i].ID == id {
			return &g.Tournaments[i], nil
		}
	}
	return nil, model.ErrTournamentNotFound
}

func (g *MockGateway) GetProfile(_ context.Context, sess *model.Session) (*model.Profile, error) {
	if g.ProfileErr != nil {
		return nil, g.ProfileErr
	}
	profile, ok := g.Profiles[sess.UserID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (g *MockGateway) SignUpAuth(_ context.Context, email, password, username string) (*supabase.SignUpResult, error) {
	g.SignUpCalls++
	if g.SignUpErr != nil {
		return nil, g.SignUpErr
	}
	if g.SignUpResult != nil {
		return g.SignUpResult, nil
	}
	return &supabase.SignUpResult{
		User: supabase.AuthUser{ID: "00000000-0000-0000-0000-000000000001", Email: email},
	}, nil
}

func (g *MockGateway) InsertProfile(_ context.Context, profile model.Profile, _ string) error {
	g.InsertProfileCalls++
	if g.InsertProfileErr != nil {
		return g.InsertProfileErr
	}
	g.InsertedProfiles = append(g.InsertedProfiles, profile)
	return nil
}

func (g *MockGateway) DeleteAuthUser(_ context.Context, userID string) error {
	if g.DeleteErr != nil {
		return g.DeleteErr
	}
	g.DeletedUsers = append(g.DeletedUsers, userID)
	return nil
}

func (g *MockGateway) SignInWithPassword(_ context.Context, email, _ string) (*supabase.AuthSession, error) {
	if g.SignInErr != nil {
		return nil, g.SignInErr
	}
	if g.SignInSession != nil {
		return g.SignInSession, nil
	}
	return &supabase.AuthSession{UserID: "00000000-0000-0000-0000-000000000001", AccessToken: "access"}, nil
}

func (g *MockGateway) InsertRegistration(_ context.Context, sess *model.Session, tournamentID model.TournamentID) error {
	if g.InsertRegistrationErr != nil {
		return g.InsertRegistrationErr
	}
	g.Registrations = append(g.Registrations, model.Registration{
		UserID:        sess.UserID,
		TournamentID:  tournamentID,
		PaymentStatus: model.PaymentCompleted,
	})
	return nil
}
