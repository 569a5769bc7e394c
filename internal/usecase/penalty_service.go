package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

// PenaltyService exposes read views over penalties written by sync passes.
// Penalties are never created here; the drop pass is the only writer.
type PenaltyService struct {
	penaltyRepo penalty.Repository
	logger      *logging.Logger
}

func NewPenaltyService(penaltyRepo penalty.Repository, logger *logging.Logger) *PenaltyService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PenaltyService{
		penaltyRepo: penaltyRepo,
		logger:      logger,
	}
}

// TeamPenaltySummary is a team's outstanding penalty load grouped by year.
type TeamPenaltySummary struct {
	LeagueID    string            `json:"league_id"`
	TeamID      string            `json:"team_id"`
	Penalties   []penalty.Penalty `json:"penalties"`
	TotalByYear map[int]int64     `json:"total_by_year"`
	Total       int64             `json:"total"`
}

func (s *PenaltyService) ListTeamPenalties(ctx context.Context, leagueID, teamID string) (TeamPenaltySummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.ListTeamPenalties")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return TeamPenaltySummary{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	rows, err := s.penaltyRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return TeamPenaltySummary{}, fmt.Errorf("list team penalties: %w", err)
	}

	summary := TeamPenaltySummary{
		LeagueID:    leagueID,
		TeamID:      teamID,
		Penalties:   rows,
		TotalByYear: make(map[int]int64, len(rows)),
	}
	for _, p := range rows {
		summary.TotalByYear[p.Year] += p.Amount
		summary.Total += p.Amount
	}

	return summary, nil
}

func (s *PenaltyService) ListYearPenalties(ctx context.Context, leagueID string, year int) ([]penalty.Penalty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.ListYearPenalties")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	rows, err := s.penaltyRepo.ListByYear(ctx, leagueID, year)
	if err != nil {
		return nil, fmt.Errorf("list year penalties: %w", err)
	}
	return rows, nil
}
