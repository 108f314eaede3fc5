package catalog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// Service provides the tournament catalog reads. Nothing is cached: every
// page render issues a fresh fetch, and the list is only ever replaced
// wholesale after a refetch.
type Service struct {
	gateway supabase.Gateway
	logger  *slog.Logger
}

// New creates a catalog service.
func New(gateway supabase.Gateway, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// List returns all tournaments ordered ascending by start date. The backend
// already orders the query; the sort here upholds the invariant regardless.
func (s *Service) List(ctx context.Context) ([]model.Tournament, error) {
	tournaments, err := s.gateway.ListTournaments(ctx)
	if err != nil {
		s.logger.Error("tournament list fetch failed", slog.String("error", err.Error()))
		return nil, err
	}

	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].StartDate.Before(tournaments[j].StartDate)
	})
	return tournaments, nil
}

// Get returns one tournament with its participant roster.
func (s *Service) Get(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	return s.gateway.GetTournament(ctx, id)
}
