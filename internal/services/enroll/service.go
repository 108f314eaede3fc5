package enroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/payments"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// Outcome classifies the result of a join attempt. Every attempt resolves
// to exactly one outcome; the handler maps each to its own redirect.
type Outcome int

const (
	// RegistrationRequired means there is no signed-in user; the visitor
	// is sent to the registration form.
	RegistrationRequired Outcome = iota
	// NotVerified means the user exists but has not confirmed their email,
	// or their profile could not be read.
	NotVerified
	// CheckoutStarted means a paid tournament produced a hosted checkout
	// session; Result.CheckoutURL holds the redirect target.
	CheckoutStarted
	// Enrolled means the registration row was written for a free tournament.
	Enrolled
)

// Result is the decision a join attempt resolved to.
type Result struct {
	Outcome     Outcome
	CheckoutURL string
}

// Config carries the checkout parameters shared by every paid enrollment.
type Config struct {
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// Service implements the enrollment workflow. Verification gates every
// path; payment status decides between a direct insert and a checkout
// redirect. Capacity is enforced only in the page layer, from the counts
// fetched at render time, so a tournament can fill between render and join.
type Service struct {
	gateway  supabase.Gateway
	checkout payments.CheckoutCreator
	cfg      Config
	logger   *slog.Logger
}

// New creates an enrollment service.
func New(gateway supabase.Gateway, checkout payments.CheckoutCreator, cfg Config, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, checkout: checkout, cfg: cfg, logger: logger}
}

// Join runs the enrollment decision procedure for one user and tournament.
//
// A nil session short-circuits to RegistrationRequired before any remote
// call. An unverified account, or any failure to read the profile, resolves
// to NotVerified. Paid tournaments never write a registration row here;
// they hand off to the payment provider and the row is written by the
// backend on payment completion. Free tournaments insert the row directly
// with payment status completed. There is no duplicate pre-check: a repeat
// join surfaces as the backend's unique-constraint error.
func (s *Service) Join(ctx context.Context, sess *model.Session, tournament model.Tournament) (*Result, error) {
	if sess == nil {
		return &Result{Outcome: RegistrationRequired}, nil
	}

	profile, err := s.gateway.GetProfile(ctx, sess)
	if err != nil {
		s.logger.Warn("profile lookup failed during join",
			slog.String("user_id", sess.UserID),
			slog.String("error", err.Error()))
		return &Result{Outcome: NotVerified}, nil
	}
	if !profile.Verified {
		return &Result{Outcome: NotVerified}, nil
	}

	if tournament.IsPaid {
		url, err := s.checkout.CreateCheckout(ctx, payments.CheckoutParams{
			PriceID:    s.cfg.PriceID,
			Quantity:   1,
			SuccessURL: s.cfg.SuccessURL,
			CancelURL:  s.cfg.CancelURL,
		})
		if err != nil {
			return nil, fmt.Errorf("creating checkout for tournament %s: %w", tournament.ID, err)
		}
		return &Result{Outcome: CheckoutStarted, CheckoutURL: url}, nil
	}

	if err := s.gateway.InsertRegistration(ctx, sess, tournament.ID); err != nil {
		return nil, fmt.Errorf("registering for tournament %s: %w", tournament.ID, err)
	}
	s.logger.Info("user enrolled",
		slog.String("user_id", sess.UserID),
		slog.String("tournament_id", string(tournament.ID)))
	return &Result{Outcome: Enrolled}, nil
}
