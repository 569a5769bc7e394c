package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/keeper-league/internal/platform/cache"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

func newSpendingService(cacheStore *cache.Store) *SpendingService {
	return NewSpendingService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewContractRepository(memory.SeedContracts()),
		cacheStore,
		logging.NewNop(),
	)
}

func TestSpendingService_PositionRanks(t *testing.T) {
	// Active contracts in the seed, costed for the 2026 season:
	//   team-alpha QB: 24 drafted 2024 over 3 years, escalated 24 -> 27 -> 30
	//   team-alpha RB: 31 drafted 2025 over 4 years, 2026 cost 35
	//   team-bravo WR: 18 drafted 2025 over 2 years, 2026 cost 20
	//   team-bravo RB: 9 drafted 2026, brand new, raw draft amount 9
	service := newSpendingService(nil)

	alpha, err := service.PositionRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("position ranks failed: %v", err)
	}

	qb, ok := alpha.Positions["QB"]
	if !ok {
		t.Fatalf("expected QB rank for team-alpha")
	}
	if qb.Rank != 1 || qb.TotalTeams != 1 || qb.Spend != 30 {
		t.Fatalf("unexpected QB rank: %+v", qb)
	}

	rb, ok := alpha.Positions["RB"]
	if !ok {
		t.Fatalf("expected RB rank for team-alpha")
	}
	if rb.Rank != 1 || rb.TotalTeams != 2 || rb.Spend != 35 {
		t.Fatalf("unexpected RB rank: %+v", rb)
	}

	if _, ok := alpha.Positions["WR"]; ok {
		t.Fatalf("team-alpha has no active WR spend and must have no WR rank")
	}

	bravo, err := service.PositionRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-bravo")
	if err != nil {
		t.Fatalf("position ranks failed: %v", err)
	}
	if bravo.Positions["RB"].Rank != 2 || bravo.Positions["RB"].Spend != 9 {
		t.Fatalf("brand-new contract must cost its raw draft amount: %+v", bravo.Positions["RB"])
	}
	if bravo.Positions["WR"].Rank != 1 || bravo.Positions["WR"].Spend != 20 {
		t.Fatalf("unexpected WR rank: %+v", bravo.Positions["WR"])
	}
}

func TestSpendingService_FutureYearRanks(t *testing.T) {
	// Only team-alpha's 4-year RB deal reaches past 2026: 39 in 2027 and
	// 43 in 2028, nothing in 2029.
	service := newSpendingService(nil)

	alpha, err := service.FutureYearRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("future year ranks failed: %v", err)
	}

	y2027, ok := alpha.Years[2027]
	if !ok {
		t.Fatalf("expected 2027 rank for team-alpha")
	}
	if y2027.Rank != 1 || y2027.TotalTeams != 1 || y2027.Spend != 39 {
		t.Fatalf("unexpected 2027 rank: %+v", y2027)
	}

	y2028, ok := alpha.Years[2028]
	if !ok {
		t.Fatalf("expected 2028 rank for team-alpha")
	}
	if y2028.Spend != 43 {
		t.Fatalf("expected 2028 committed spend 43, got %d", y2028.Spend)
	}

	if _, ok := alpha.Years[2029]; ok {
		t.Fatalf("no contract reaches 2029, rank must be absent")
	}

	bravo, err := service.FutureYearRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-bravo")
	if err != nil {
		t.Fatalf("future year ranks failed: %v", err)
	}
	if len(bravo.Years) != 0 {
		t.Fatalf("team-bravo commits nothing forward, got %+v", bravo.Years)
	}
}

func TestSpendingService_CacheInvalidation(t *testing.T) {
	store := cache.NewStore(time.Minute)
	service := newSpendingService(store)

	first, err := service.PositionRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("position ranks failed: %v", err)
	}

	cached, err := service.PositionRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("cached position ranks failed: %v", err)
	}
	if cached.Positions["QB"] != first.Positions["QB"] {
		t.Fatalf("expected identical cached view")
	}

	service.InvalidateLeague(t.Context(), memory.LeagueIDDynastyOriginal)

	again, err := service.PositionRanks(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("position ranks after invalidation failed: %v", err)
	}
	if again.Positions["QB"].Spend != 30 {
		t.Fatalf("expected recomputed view after invalidation, got %+v", again.Positions["QB"])
	}
}
