package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

// SeasonState is the provider's view of where a league's calendar stands.
// It decides whether a drop's first penalty lands in the drop year or the
// year after.
type SeasonState struct {
	SeasonYear  int
	IsOffseason bool
}

// TeamRoster is one team's freshly fetched player set.
type TeamRoster struct {
	TeamID    string
	PlayerIDs []string
}

// RosterProvider fetches live roster and season data from the external
// fantasy-sports API. All network I/O happens here, before any diffing.
type RosterProvider interface {
	FetchSeasonState(ctx context.Context, leagueRefID int64) (SeasonState, error)
	FetchLeagueRosters(ctx context.Context, leagueRefID int64) ([]TeamRoster, error)
}

// RankInvalidator drops cached spending ranks after a pass commits.
type RankInvalidator interface {
	InvalidateLeague(ctx context.Context, leagueID string)
}

// TeamSyncResult reports one roster's pass.
type TeamSyncResult struct {
	TeamID       string `json:"team_id"`
	Dropped      int    `json:"dropped"`
	Deactivated  int    `json:"deactivated"`
	Penalties    int    `json:"penalties"`
	SkippedDirty int    `json:"skipped_dirty"`
}

// LeagueSyncResult reports one league's pass.
type LeagueSyncResult struct {
	LeagueID   string           `json:"league_id"`
	SeasonYear int              `json:"season_year"`
	Offseason  bool             `json:"offseason"`
	Teams      []TeamSyncResult `json:"teams"`
	DurationMs int64            `json:"duration_ms"`
	Error      string           `json:"error,omitempty"`
}

// SyncAllResult aggregates a fan-out across leagues.
type SyncAllResult struct {
	LeagueCount  int                `json:"league_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Leagues      []LeagueSyncResult `json:"leagues"`
}

type RosterSyncService struct {
	provider     RosterProvider
	leagueRepo   league.Repository
	contractRepo contract.Repository
	rosterRepo   roster.Repository
	passWriter   roster.PassWriter
	invalidator  RankInvalidator
	logger       *logging.Logger
	now          func() time.Time

	// One mutex per league: drop detection diffs a stored snapshot against
	// a live fetch, which is only sound if no other writer touches the
	// league's rosters mid-pass.
	leagueLocks sync.Map
}

func NewRosterSyncService(
	provider RosterProvider,
	leagueRepo league.Repository,
	contractRepo contract.Repository,
	rosterRepo roster.Repository,
	passWriter roster.PassWriter,
	invalidator RankInvalidator,
	logger *logging.Logger,
) *RosterSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterSyncService{
		provider:     provider,
		leagueRepo:   leagueRepo,
		contractRepo: contractRepo,
		rosterRepo:   rosterRepo,
		passWriter:   passWriter,
		invalidator:  invalidator,
		logger:       logger,
		now:          time.Now,
	}
}

// SyncLeague runs one full drop-detection pass for a league. Passes for the
// same league never interleave; each roster's writes commit atomically.
func (s *RosterSyncService) SyncLeague(ctx context.Context, leagueID string) (LeagueSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterSyncService.SyncLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueSyncResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return LeagueSyncResult{}, fmt.Errorf("%w: roster provider is not configured", ErrDependencyUnavailable)
	}

	lock := s.lockFor(leagueID)
	lock.Lock()
	defer lock.Unlock()

	started := s.now()

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueSyncResult{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueSyncResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if lg.ExternalRefID <= 0 {
		return LeagueSyncResult{}, fmt.Errorf("%w: league %s has no external reference id", ErrDependencyUnavailable, leagueID)
	}

	state, err := s.provider.FetchSeasonState(ctx, lg.ExternalRefID)
	if err != nil {
		return LeagueSyncResult{}, fmt.Errorf("fetch season state league=%s: %w", leagueID, err)
	}
	if state.SeasonYear <= 0 {
		return LeagueSyncResult{}, fmt.Errorf("%w: provider returned season year %d for league %s", ErrDataIntegrity, state.SeasonYear, leagueID)
	}

	rosters, err := s.provider.FetchLeagueRosters(ctx, lg.ExternalRefID)
	if err != nil {
		return LeagueSyncResult{}, fmt.Errorf("fetch rosters league=%s: %w", leagueID, err)
	}

	result := LeagueSyncResult{
		LeagueID:   leagueID,
		SeasonYear: state.SeasonYear,
		Offseason:  state.IsOffseason,
		Teams:      make([]TeamSyncResult, 0, len(rosters)),
	}

	for _, teamRoster := range rosters {
		teamResult, err := s.processRoster(ctx, leagueID, state, teamRoster)
		if err != nil {
			return LeagueSyncResult{}, err
		}
		result.Teams = append(result.Teams, teamResult)
	}

	sort.SliceStable(result.Teams, func(i, j int) bool {
		return result.Teams[i].TeamID < result.Teams[j].TeamID
	})
	result.DurationMs = s.now().Sub(started).Milliseconds()

	if s.invalidator != nil {
		s.invalidator.InvalidateLeague(ctx, leagueID)
	}

	s.logger.InfoContext(ctx, "league sync pass completed",
		"league_id", leagueID,
		"season_year", state.SeasonYear,
		"offseason", state.IsOffseason,
		"teams", len(result.Teams),
		"duration_ms", result.DurationMs,
	)

	return result, nil
}

// SyncAllLeagues fans SyncLeague out across every known league on a worker
// pool. League failures are reported per league, not fatal to the whole run.
func (s *RosterSyncService) SyncAllLeagues(ctx context.Context, maxWorkers int) (SyncAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterSyncService.SyncAllLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return SyncAllResult{}, fmt.Errorf("list leagues: %w", err)
	}

	workerCount := maxWorkers
	if workerCount < 1 {
		workerCount = 4
	}
	if workerCount > len(leagues) && len(leagues) > 0 {
		workerCount = len(leagues)
	}

	result := SyncAllResult{
		LeagueCount: len(leagues),
		WorkerCount: workerCount,
	}
	if len(leagues) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncAllResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan LeagueSyncResult, len(leagues))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, lg := range leagues {
		lg := lg
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row, syncErr := s.SyncLeague(ctx, lg.ID)
			if syncErr != nil {
				failedCount.Add(1)
				results <- LeagueSyncResult{LeagueID: lg.ID, Error: syncErr.Error()}
				return
			}
			successCount.Add(1)
			results <- row
		}); err != nil {
			workers.Done()
			return SyncAllResult{}, fmt.Errorf("submit league sync to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Leagues = append(result.Leagues, row)
	}
	sort.SliceStable(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].LeagueID < result.Leagues[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *RosterSyncService) processRoster(
	ctx context.Context,
	leagueID string,
	state SeasonState,
	teamRoster TeamRoster,
) (TeamSyncResult, error) {
	teamID := strings.TrimSpace(teamRoster.TeamID)
	if teamID == "" {
		return TeamSyncResult{}, fmt.Errorf("%w: provider returned roster without team id for league %s", ErrDataIntegrity, leagueID)
	}

	result := TeamSyncResult{TeamID: teamID}

	previous, _, err := s.rosterRepo.GetSnapshot(ctx, leagueID, teamID)
	if err != nil {
		return TeamSyncResult{}, fmt.Errorf("get roster snapshot league=%s team=%s: %w", leagueID, teamID, err)
	}

	dropped := roster.DetectDrops(previous.PlayerIDs, teamRoster.PlayerIDs)
	result.Dropped = len(dropped)

	pass := roster.DropPass{
		LeagueID: leagueID,
		TeamID:   teamID,
		Snapshot: roster.Snapshot{
			LeagueID:  leagueID,
			TeamID:    teamID,
			PlayerIDs: append([]string(nil), teamRoster.PlayerIDs...),
			SyncedAt:  s.now().UTC(),
		},
	}

	for _, playerID := range dropped {
		c, exists, err := s.contractRepo.GetActive(ctx, leagueID, teamID, playerID)
		if err != nil {
			return TeamSyncResult{}, fmt.Errorf("get active contract league=%s team=%s player=%s: %w", leagueID, teamID, playerID, err)
		}
		if !exists {
			// No cap claim, no penalty. Free-agent churn is normal.
			continue
		}

		if err := c.Validate(); err != nil {
			// A corrupt row means earlier data damage that penalty math
			// cannot guess around. Skip this player, keep the pass alive.
			result.SkippedDirty++
			s.logger.ErrorContext(ctx, "active contract fails validation, skipping penalty",
				"league_id", leagueID,
				"team_id", teamID,
				"player_id", playerID,
				"contract_id", c.ID,
				"error", err,
			)
			continue
		}

		charges, err := contract.DropCharges(c, state.SeasonYear, state.IsOffseason)
		if err != nil {
			if errors.Is(err, contract.ErrOutOfTerm) {
				// Sequencing bug upstream; the contract stays active
				// until someone looks at it.
				s.logger.WarnContext(ctx, "drop outside contract term, no penalties applied",
					"league_id", leagueID,
					"team_id", teamID,
					"player_id", playerID,
					"contract_id", c.ID,
					"error", err,
				)
				continue
			}
			return TeamSyncResult{}, fmt.Errorf("%w: compute drop charges contract=%d: %v", ErrDataIntegrity, c.ID, err)
		}

		pass.DeactivateContractIDs = append(pass.DeactivateContractIDs, c.ID)
		for _, charge := range charges {
			pass.Penalties = append(pass.Penalties, penalty.Penalty{
				ContractID: c.ID,
				LeagueID:   leagueID,
				TeamID:     teamID,
				Year:       charge.Year,
				Amount:     charge.Amount,
			})
		}
	}

	if err := s.passWriter.CommitDropPass(ctx, pass); err != nil {
		return TeamSyncResult{}, fmt.Errorf("commit drop pass league=%s team=%s: %w", leagueID, teamID, err)
	}

	result.Deactivated = len(pass.DeactivateContractIDs)
	result.Penalties = len(pass.Penalties)

	if result.Dropped > 0 {
		s.logger.InfoContext(ctx, "roster drops processed",
			"league_id", leagueID,
			"team_id", teamID,
			"dropped", result.Dropped,
			"deactivated", result.Deactivated,
			"penalties", result.Penalties,
		)
	}

	return result, nil
}

func (s *RosterSyncService) lockFor(leagueID string) *sync.Mutex {
	actual, _ := s.leagueLocks.LoadOrStore(leagueID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
