package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

type contractFixture struct {
	leagues   *memory.LeagueRepository
	contracts *memory.ContractRepository
	service   *ContractService
}

func newContractFixture() contractFixture {
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	contracts := memory.NewContractRepository(memory.SeedContracts())

	service := NewContractService(
		leagues,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		contracts,
		logging.NewNop(),
	)
	service.now = func() time.Time { return time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC) }

	return contractFixture{
		leagues:   leagues,
		contracts: contracts,
		service:   service,
	}
}

func TestContractService_CreateContract_DefaultsToOneYear(t *testing.T) {
	fx := newContractFixture()

	created, err := fx.service.CreateContract(t.Context(), CreateContractInput{
		LeagueID:    memory.LeagueIDDynastyOriginal,
		TeamID:      "team-alpha",
		PlayerID:    "pl-te-01",
		DraftAmount: 14,
	})
	if err != nil {
		t.Fatalf("create contract failed: %v", err)
	}

	if created.Duration != contract.MinDuration {
		t.Fatalf("expected default duration %d, got %d", contract.MinDuration, created.Duration)
	}
	if created.StartYear != 2026 {
		t.Fatalf("expected start year from league season, got %d", created.StartYear)
	}
	if !created.Active {
		t.Fatalf("expected new contract active")
	}
}

func TestContractService_CreateContract_RejectsDuplicateActive(t *testing.T) {
	fx := newContractFixture()

	// pl-qb-01 already has an active contract on team-alpha.
	_, err := fx.service.CreateContract(t.Context(), CreateContractInput{
		LeagueID:    memory.LeagueIDDynastyOriginal,
		TeamID:      "team-alpha",
		PlayerID:    "pl-qb-01",
		DraftAmount: 20,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestContractService_CreateContract_UnknownPlayer(t *testing.T) {
	fx := newContractFixture()

	_, err := fx.service.CreateContract(t.Context(), CreateContractInput{
		LeagueID:    memory.LeagueIDDynastyOriginal,
		TeamID:      "team-alpha",
		PlayerID:    "pl-nope",
		DraftAmount: 5,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContractService_SetDuration_OneShot(t *testing.T) {
	fx := newContractFixture()

	created, err := fx.service.CreateContract(t.Context(), CreateContractInput{
		LeagueID:    memory.LeagueIDDynastyOriginal,
		TeamID:      "team-bravo",
		PlayerID:    "pl-k-01",
		DraftAmount: 3,
	})
	if err != nil {
		t.Fatalf("create contract failed: %v", err)
	}

	updated, err := fx.service.SetDuration(t.Context(), created.ID, 3)
	if err != nil {
		t.Fatalf("set duration failed: %v", err)
	}
	if updated.Duration != 3 {
		t.Fatalf("expected duration 3, got %d", updated.Duration)
	}

	// A second attempt must fail: the term is locked in.
	if _, err := fx.service.SetDuration(t.Context(), created.ID, 4); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second set, got %v", err)
	}
}

func TestContractService_SetDuration_WindowClosed(t *testing.T) {
	fx := newContractFixture()

	created, err := fx.service.CreateContract(t.Context(), CreateContractInput{
		LeagueID:    memory.LeagueIDDynastyOriginal,
		TeamID:      "team-bravo",
		PlayerID:    "pl-def-01",
		DraftAmount: 2,
	})
	if err != nil {
		t.Fatalf("create contract failed: %v", err)
	}

	fx.leagues.SetContractWindow(memory.LeagueIDDynastyOriginal, false)

	if _, err := fx.service.SetDuration(t.Context(), created.ID, 2); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict with window closed, got %v", err)
	}
}

func TestContractService_SetDuration_RejectsAlreadySetTerm(t *testing.T) {
	fx := newContractFixture()

	// Contract 1 already carries a 3-year term.
	if _, err := fx.service.SetDuration(t.Context(), 1, 2); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for already-set term, got %v", err)
	}
}

func TestContractService_SetDuration_RejectsPriorSeasonContracts(t *testing.T) {
	// A one-year deal from a prior season still at its default duration
	// must not be re-negotiable this season.
	contracts := memory.NewContractRepository([]contract.Contract{
		{ID: 20, PlayerID: "pl-te-01", TeamID: "team-alpha", LeagueID: memory.LeagueIDDynastyOriginal, DraftAmount: 7, StartYear: 2025, Duration: 1, Active: true},
	})
	service := NewContractService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		contracts,
		logging.NewNop(),
	)

	if _, err := service.SetDuration(t.Context(), 20, 2); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for prior-season contract, got %v", err)
	}
}

func TestContractService_SetDuration_BoundsChecked(t *testing.T) {
	fx := newContractFixture()

	if _, err := fx.service.SetDuration(t.Context(), 4, 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duration 5, got %v", err)
	}
	if _, err := fx.service.SetDuration(t.Context(), 4, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duration 0, got %v", err)
	}
}

func TestContractService_ListTeamContracts_IncludesSchedules(t *testing.T) {
	fx := newContractFixture()

	rows, err := fx.service.ListTeamContracts(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list team contracts failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 contracts for team-alpha, got %d", len(rows))
	}

	for _, row := range rows {
		if len(row.Schedule) != row.Contract.Duration {
			t.Fatalf("schedule length %d does not match duration %d", len(row.Schedule), row.Contract.Duration)
		}
		if row.Schedule[0].Cost != row.Contract.DraftAmount {
			t.Fatalf("first schedule year must equal draft amount")
		}
	}
}
