package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

type fakeRosterProvider struct {
	state    SeasonState
	rosters  []TeamRoster
	stateErr error
	fetchErr error
}

func (p *fakeRosterProvider) FetchSeasonState(_ context.Context, _ int64) (SeasonState, error) {
	if p.stateErr != nil {
		return SeasonState{}, p.stateErr
	}
	return p.state, nil
}

func (p *fakeRosterProvider) FetchLeagueRosters(_ context.Context, _ int64) ([]TeamRoster, error) {
	if p.fetchErr != nil {
		return nil, p.fetchErr
	}
	return p.rosters, nil
}

type syncFixture struct {
	contracts *memory.ContractRepository
	penalties *memory.PenaltyRepository
	rosters   *memory.RosterRepository
	writer    *memory.PassWriter
	service   *RosterSyncService
}

func newSyncFixture(provider RosterProvider) syncFixture {
	contracts := memory.NewContractRepository(memory.SeedContracts())
	penalties := memory.NewPenaltyRepository(nil)
	rosters := memory.NewRosterRepository(memory.SeedSnapshots())
	writer := memory.NewPassWriter(contracts, penalties, rosters)

	service := NewRosterSyncService(
		provider,
		memory.NewLeagueRepository(memory.SeedLeagues()),
		contracts,
		rosters,
		writer,
		nil,
		logging.NewNop(),
	)
	service.now = func() time.Time { return time.Date(2026, 8, 21, 6, 0, 0, 0, time.UTC) }

	return syncFixture{
		contracts: contracts,
		penalties: penalties,
		rosters:   rosters,
		writer:    writer,
		service:   service,
	}
}

func TestRosterSyncService_SyncLeague_DropWritesPenaltiesAndDeactivates(t *testing.T) {
	// team-alpha held pl-qb-01 under a 3-year deal starting 2024 at 24.
	// Dropping it in the 2026 offseason leaves one year owed: one third
	// of the escalated chain looks ahead to year index 3, ceil chain
	// 24 -> 27 -> 30 -> 33, penalty round(33 * 0.25) = 8, charged 2026.
	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{"pl-rb-01", "pl-wr-02"}},
			{TeamID: "team-bravo", PlayerIDs: []string{"pl-wr-01", "pl-rb-02"}},
		},
	}
	fx := newSyncFixture(provider)

	result, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal)
	if err != nil {
		t.Fatalf("sync league failed: %v", err)
	}

	if len(result.Teams) != 2 {
		t.Fatalf("expected 2 team results, got %d", len(result.Teams))
	}
	alpha := result.Teams[0]
	if alpha.TeamID != "team-alpha" {
		t.Fatalf("expected team-alpha first, got %s", alpha.TeamID)
	}
	if alpha.Dropped != 1 || alpha.Deactivated != 1 || alpha.Penalties != 1 {
		t.Fatalf("expected 1 drop / 1 deactivation / 1 penalty, got %+v", alpha)
	}

	c, exists, err := fx.contracts.GetByID(t.Context(), 1)
	if err != nil || !exists {
		t.Fatalf("contract 1 missing after sync: exists=%v err=%v", exists, err)
	}
	if c.Active {
		t.Fatalf("expected contract 1 deactivated after drop")
	}

	rows, err := fx.penalties.ListByTeam(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list penalties failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 penalty row, got %d", len(rows))
	}
	if rows[0].Year != 2026 || rows[0].Amount != 8 {
		t.Fatalf("expected penalty year=2026 amount=8, got year=%d amount=%d", rows[0].Year, rows[0].Amount)
	}
	if rows[0].ContractID != 1 {
		t.Fatalf("expected penalty against contract 1, got %d", rows[0].ContractID)
	}

	snapshot, exists, err := fx.rosters.GetSnapshot(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil || !exists {
		t.Fatalf("snapshot missing after sync: exists=%v err=%v", exists, err)
	}
	if len(snapshot.PlayerIDs) != 2 {
		t.Fatalf("expected snapshot replaced with 2 players, got %v", snapshot.PlayerIDs)
	}
}

func TestRosterSyncService_SyncLeague_InSeasonDropChargesNextYear(t *testing.T) {
	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: false},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{"pl-rb-01", "pl-wr-02"}},
		},
	}
	fx := newSyncFixture(provider)

	if _, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal); err != nil {
		t.Fatalf("sync league failed: %v", err)
	}

	rows, err := fx.penalties.ListByTeam(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list penalties failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 penalty row, got %d", len(rows))
	}
	if rows[0].Year != 2027 {
		t.Fatalf("in-season drop must charge the following year, got %d", rows[0].Year)
	}
}

func TestRosterSyncService_SyncLeague_NoContractNoPenalty(t *testing.T) {
	// pl-wr-02's contract is already inactive; dropping the player is
	// plain free-agent churn and must write nothing.
	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{"pl-qb-01", "pl-rb-01"}},
		},
	}
	fx := newSyncFixture(provider)

	result, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal)
	if err != nil {
		t.Fatalf("sync league failed: %v", err)
	}

	alpha := result.Teams[0]
	if alpha.Dropped != 1 {
		t.Fatalf("expected 1 drop, got %d", alpha.Dropped)
	}
	if alpha.Deactivated != 0 || alpha.Penalties != 0 {
		t.Fatalf("uncontracted drop must not deactivate or charge, got %+v", alpha)
	}

	rows, err := fx.penalties.ListByTeam(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list penalties failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no penalty rows, got %d", len(rows))
	}
}

func TestRosterSyncService_SyncLeague_OutOfTermDropSkipsQuietly(t *testing.T) {
	// A contract whose term already lapsed but was never deactivated is a
	// sequencing bug. The drop must not charge anything and must leave
	// the contract active for a human to look at.
	contracts := memory.NewContractRepository([]contract.Contract{
		{ID: 10, PlayerID: "pl-qb-01", TeamID: "team-alpha", LeagueID: memory.LeagueIDDynastyOriginal, DraftAmount: 15, StartYear: 2022, Duration: 2, Active: true},
	})
	penalties := memory.NewPenaltyRepository(nil)
	rosters := memory.NewRosterRepository([]roster.Snapshot{
		{LeagueID: memory.LeagueIDDynastyOriginal, TeamID: "team-alpha", PlayerIDs: []string{"pl-qb-01"}},
	})

	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{}},
		},
	}

	service := NewRosterSyncService(
		provider,
		memory.NewLeagueRepository(memory.SeedLeagues()),
		contracts,
		rosters,
		memory.NewPassWriter(contracts, penalties, rosters),
		nil,
		logging.NewNop(),
	)

	result, err := service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal)
	if err != nil {
		t.Fatalf("sync league failed: %v", err)
	}

	alpha := result.Teams[0]
	if alpha.Dropped != 1 || alpha.Deactivated != 0 || alpha.Penalties != 0 {
		t.Fatalf("out-of-term drop must be skipped, got %+v", alpha)
	}

	c, _, err := contracts.GetByID(t.Context(), 10)
	if err != nil {
		t.Fatalf("get contract failed: %v", err)
	}
	if !c.Active {
		t.Fatalf("out-of-term contract must stay active")
	}
}

func TestRosterSyncService_SyncLeague_FailedCommitLeavesNothingBehind(t *testing.T) {
	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{"pl-rb-01", "pl-wr-02"}},
		},
	}
	fx := newSyncFixture(provider)

	commitErr := errors.New("storage unavailable")
	fx.writer.CommitHook = func(_ roster.DropPass) error { return commitErr }

	if _, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal); !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error surfaced, got %v", err)
	}

	c, _, err := fx.contracts.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get contract failed: %v", err)
	}
	if !c.Active {
		t.Fatalf("failed pass must not deactivate the contract")
	}

	rows, err := fx.penalties.ListByTeam(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list penalties failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("failed pass must not write penalties, got %d rows", len(rows))
	}

	snapshot, _, err := fx.rosters.GetSnapshot(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("get snapshot failed: %v", err)
	}
	if len(snapshot.PlayerIDs) != 3 {
		t.Fatalf("failed pass must keep the previous snapshot, got %v", snapshot.PlayerIDs)
	}
}

func TestRosterSyncService_SyncLeague_RepeatedPassIsIdempotent(t *testing.T) {
	provider := &fakeRosterProvider{
		state: SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{
			{TeamID: "team-alpha", PlayerIDs: []string{"pl-rb-01", "pl-wr-02"}},
		},
	}
	fx := newSyncFixture(provider)

	if _, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	// Same roster again: the drop was already absorbed into the snapshot
	// so nothing new may be charged.
	result, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal)
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if result.Teams[0].Dropped != 0 {
		t.Fatalf("expected no drops on repeat pass, got %d", result.Teams[0].Dropped)
	}

	rows, err := fx.penalties.ListByTeam(t.Context(), memory.LeagueIDDynastyOriginal, "team-alpha")
	if err != nil {
		t.Fatalf("list penalties failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 penalty after two passes, got %d", len(rows))
	}
}

func TestRosterSyncService_SyncAllLeagues(t *testing.T) {
	provider := &fakeRosterProvider{
		state:   SeasonState{SeasonYear: 2026, IsOffseason: true},
		rosters: []TeamRoster{},
	}
	fx := newSyncFixture(provider)

	result, err := fx.service.SyncAllLeagues(t.Context(), 2)
	if err != nil {
		t.Fatalf("sync all leagues failed: %v", err)
	}
	if result.LeagueCount != 2 {
		t.Fatalf("expected 2 leagues, got %d", result.LeagueCount)
	}
	if result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("expected 2 successes, got success=%d failed=%d", result.SuccessCount, result.FailedCount)
	}
	if len(result.Leagues) != 2 {
		t.Fatalf("expected 2 league results, got %d", len(result.Leagues))
	}
	if result.Leagues[0].LeagueID > result.Leagues[1].LeagueID {
		t.Fatalf("expected league results sorted by id")
	}
}

func TestRosterSyncService_SyncLeague_ProviderFailureAborts(t *testing.T) {
	provider := &fakeRosterProvider{
		stateErr: errors.New("upstream timeout"),
	}
	fx := newSyncFixture(provider)

	if _, err := fx.service.SyncLeague(t.Context(), memory.LeagueIDDynastyOriginal); err == nil {
		t.Fatalf("expected provider failure to abort the pass")
	}
}
