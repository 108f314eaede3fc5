package register

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// Service implements the two-step sign-up: create the auth identity, then
// insert the application profile. The profile insert is compensated by
// deleting the auth user when it fails, so a retry with the same email
// does not hit "already registered".
type Service struct {
	gateway supabase.Gateway
	logger  *slog.Logger
}

// New creates a registration service.
func New(gateway supabase.Gateway, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// SignUp validates the draft and creates the account. Validation errors
// come back before any remote call; remote failures carry the provider's
// message. On success the account exists unverified and the user must
// confirm their email before they can enroll anywhere.
func (s *Service) SignUp(ctx context.Context, draft model.RegistrationDraft) (*supabase.SignUpResult, []model.ValidationError, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	result, err := s.gateway.SignUpAuth(ctx, draft.Email, draft.Password, draft.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("creating auth user: %w", err)
	}

	profile := model.Profile{
		ID:        result.User.ID,
		Username:  draft.Username,
		Email:     draft.Email,
		Platforms: draft.Platforms,
		Verified:  false,
	}

	accessToken := ""
	if result.Session != nil {
		accessToken = result.Session.AccessToken
	}

	if err := s.gateway.InsertProfile(ctx, profile, accessToken); err != nil {
		s.compensate(ctx, result.User.ID)
		return nil, nil, fmt.Errorf("creating profile: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("user_id", result.User.ID),
		slog.String("username", draft.Username))
	return result, nil, nil
}

// compensate removes the auth user created by a sign-up whose profile
// insert failed. When the delete itself fails the auth user is orphaned;
// that only gets logged, the user sees the profile error.
func (s *Service) compensate(ctx context.Context, userID string) {
	if err := s.gateway.DeleteAuthUser(ctx, userID); err != nil {
		s.logger.Error("orphaned auth user: compensating delete failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Warn("rolled back auth user after profile insert failure",
		slog.String("user_id", userID))
}
