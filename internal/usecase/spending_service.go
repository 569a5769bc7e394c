package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/player"
	"github.com/riskibarqy/keeper-league/internal/platform/cache"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

// Rank places one team among its league peers for a single grouping.
type Rank struct {
	Rank       int   `json:"rank"`
	TotalTeams int   `json:"total_teams"`
	Spend      int64 `json:"spend"`
}

// PositionRankView maps position code to the viewed team's rank for the
// current season. Positions where the team has no eligible spend are absent.
type PositionRankView struct {
	LeagueID   string          `json:"league_id"`
	TeamID     string          `json:"team_id"`
	SeasonYear int             `json:"season_year"`
	Positions  map[string]Rank `json:"positions"`
}

// FutureYearRankView maps each of the next three seasons to the viewed
// team's committed-spend rank. Years with no committed spend are absent.
type FutureYearRankView struct {
	LeagueID string       `json:"league_id"`
	TeamID   string       `json:"team_id"`
	Years    map[int]Rank `json:"years"`
}

type SpendingService struct {
	leagueRepo   league.Repository
	playerRepo   player.Repository
	contractRepo contract.Repository
	cache        *cache.Store
	logger       *logging.Logger
}

func NewSpendingService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	contractRepo contract.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *SpendingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SpendingService{
		leagueRepo:   leagueRepo,
		playerRepo:   playerRepo,
		contractRepo: contractRepo,
		cache:        cacheStore,
		logger:       logger,
	}
}

// InvalidateLeague drops every cached rank view for a league. The sync pass
// calls this after committing drops so stale spend totals never outlive the
// contracts they were derived from.
func (s *SpendingService) InvalidateLeague(ctx context.Context, leagueID string) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, spendingCachePrefix(leagueID))
	s.logger.DebugContext(ctx, "spending rank cache invalidated", "league_id", leagueID)
}

// PositionRanks ranks every team in the league by current-season contract
// spend per position, and reports where the viewed team lands. The current
// season's cost comes from the escalated schedule; a brand-new contract whose
// schedule has not been materialized yet falls back to its raw draft amount.
func (s *SpendingService) PositionRanks(ctx context.Context, leagueID, teamID string) (PositionRankView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SpendingService.PositionRanks")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return PositionRankView{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	cacheKey := spendingCachePrefix(leagueID) + "position:" + teamID
	if s.cache != nil {
		if cached, hit := s.cache.Get(ctx, cacheKey); hit {
			return cached.(PositionRankView), nil
		}
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return PositionRankView{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return PositionRankView{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	contracts, err := s.contractRepo.ListActiveByLeague(ctx, leagueID)
	if err != nil {
		return PositionRankView{}, fmt.Errorf("list league contracts: %w", err)
	}

	positions, err := s.positionByPlayer(ctx, leagueID, contracts)
	if err != nil {
		return PositionRankView{}, err
	}

	// position -> team -> summed current-season cost
	spendByPosition := make(map[string]map[string]int64)
	for _, c := range contracts {
		pos, known := positions[c.PlayerID]
		if !known {
			s.logger.WarnContext(ctx, "contract references unknown player, excluded from position ranks",
				"league_id", leagueID,
				"contract_id", c.ID,
				"player_id", c.PlayerID,
			)
			continue
		}

		cost := currentSeasonCost(c, lg.SeasonYear)
		if cost <= 0 {
			continue
		}

		teams, ok := spendByPosition[pos]
		if !ok {
			teams = make(map[string]int64)
			spendByPosition[pos] = teams
		}
		teams[c.TeamID] += cost
	}

	view := PositionRankView{
		LeagueID:   leagueID,
		TeamID:     teamID,
		SeasonYear: lg.SeasonYear,
		Positions:  make(map[string]Rank),
	}
	for pos, teams := range spendByPosition {
		if rank, ok := rankOf(teams, teamID); ok {
			view.Positions[pos] = rank
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, view)
	}
	return view, nil
}

// FutureYearRanks ranks teams by total committed escalated cost in each of
// the next three seasons. Only active contracts commit money forward.
func (s *SpendingService) FutureYearRanks(ctx context.Context, leagueID, teamID string) (FutureYearRankView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SpendingService.FutureYearRanks")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return FutureYearRankView{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	cacheKey := spendingCachePrefix(leagueID) + "future:" + teamID
	if s.cache != nil {
		if cached, hit := s.cache.Get(ctx, cacheKey); hit {
			return cached.(FutureYearRankView), nil
		}
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return FutureYearRankView{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return FutureYearRankView{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	contracts, err := s.contractRepo.ListActiveByLeague(ctx, leagueID)
	if err != nil {
		return FutureYearRankView{}, fmt.Errorf("list league contracts: %w", err)
	}

	// future year -> team -> summed escalated cost
	spendByYear := make(map[int]map[string]int64)
	for offset := 1; offset <= 3; offset++ {
		spendByYear[lg.SeasonYear+offset] = make(map[string]int64)
	}

	for _, c := range contracts {
		schedule := contract.EscalatedCosts(c.DraftAmount, c.Duration, c.StartYear)
		for _, yc := range schedule {
			if teams, ok := spendByYear[yc.Year]; ok {
				teams[c.TeamID] += yc.Cost
			}
		}
	}

	view := FutureYearRankView{
		LeagueID: leagueID,
		TeamID:   teamID,
		Years:    make(map[int]Rank),
	}
	for year, teams := range spendByYear {
		if rank, ok := rankOf(teams, teamID); ok {
			view.Years[year] = rank
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, view)
	}
	return view, nil
}

// currentSeasonCost resolves what a contract charges against the cap this
// season. Contracts drafted this season charge their raw draft amount; older
// contracts charge the escalated entry for the season. A season outside the
// term charges nothing.
func currentSeasonCost(c contract.Contract, seasonYear int) int64 {
	if !c.Covers(seasonYear) {
		return 0
	}
	if seasonYear == c.StartYear {
		return c.DraftAmount
	}
	schedule := contract.EscalatedCosts(c.DraftAmount, c.Duration, c.StartYear)
	return contract.CostAt(schedule, seasonYear-c.StartYear)
}

// rankOf orders teams by descending spend and reports where teamID lands.
// Ties keep their sorted-input order. A team with zero spend has no rank.
func rankOf(spendByTeam map[string]int64, teamID string) (Rank, bool) {
	type teamSpend struct {
		teamID string
		spend  int64
	}

	rows := make([]teamSpend, 0, len(spendByTeam))
	for id, spend := range spendByTeam {
		if spend > 0 {
			rows = append(rows, teamSpend{teamID: id, spend: spend})
		}
	}
	if len(rows) == 0 {
		return Rank{}, false
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].spend != rows[j].spend {
			return rows[i].spend > rows[j].spend
		}
		return rows[i].teamID < rows[j].teamID
	})

	for i, row := range rows {
		if row.teamID == teamID {
			return Rank{Rank: i + 1, TotalTeams: len(rows), Spend: row.spend}, true
		}
	}
	return Rank{}, false
}

func (s *SpendingService) positionByPlayer(ctx context.Context, leagueID string, contracts []contract.Contract) (map[string]string, error) {
	ids := make([]string, 0, len(contracts))
	seen := make(map[string]struct{}, len(contracts))
	for _, c := range contracts {
		if _, dup := seen[c.PlayerID]; dup {
			continue
		}
		seen[c.PlayerID] = struct{}{}
		ids = append(ids, c.PlayerID)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, leagueID, ids)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}

	positions := make(map[string]string, len(players))
	for _, p := range players {
		positions[p.ID] = string(p.Position)
	}
	return positions, nil
}

func spendingCachePrefix(leagueID string) string {
	return "spending:" + leagueID + ":"
}
