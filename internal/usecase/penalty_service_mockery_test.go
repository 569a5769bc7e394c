package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
	penaltymock "github.com/riskibarqy/keeper-league/internal/mocks/domain/penalty"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestPenaltyService_ListTeamPenalties_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	penaltyRepo := penaltymock.NewRepository(t)
	service := NewPenaltyService(penaltyRepo, logging.NewNop())

	expected := []penalty.Penalty{
		{ID: 1, ContractID: 7, LeagueID: "lg-1", TeamID: "team-alpha", Year: 2026, Amount: 8},
		{ID: 2, ContractID: 7, LeagueID: "lg-1", TeamID: "team-alpha", Year: 2027, Amount: 9},
	}

	penaltyRepo.
		On("ListByTeam", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "lg-1", "team-alpha").
		Return(expected, nil).
		Once()

	summary, err := service.ListTeamPenalties(ctx, "lg-1", "team-alpha")
	if err != nil {
		t.Fatalf("list team penalties: %v", err)
	}
	if summary.Total != 17 {
		t.Fatalf("unexpected total: got=%d want=17", summary.Total)
	}
	if summary.TotalByYear[2027] != 9 {
		t.Fatalf("unexpected 2027 total: got=%d want=9", summary.TotalByYear[2027])
	}
}

func TestPenaltyService_ListYearPenalties_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	penaltyRepo := penaltymock.NewRepository(t)
	service := NewPenaltyService(penaltyRepo, logging.NewNop())

	repoErr := errors.New("connection reset")
	penaltyRepo.
		On("ListByYear", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "lg-1", 2026).
		Return(nil, repoErr).
		Once()

	_, err := service.ListYearPenalties(ctx, "lg-1", 2026)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
