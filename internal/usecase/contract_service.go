package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/player"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

// CreateContractInput is the incoming payload for a player acquisition.
type CreateContractInput struct {
	LeagueID    string
	TeamID      string
	PlayerID    string
	DraftAmount int64
	// Duration defaults to a one-year deal when zero; the keeper term is
	// set later, during the league's contract window.
	Duration int
}

// ContractWithSchedule pairs a contract with its escalated cost schedule.
type ContractWithSchedule struct {
	Contract contract.Contract
	Schedule []contract.YearCost
}

type ContractService struct {
	leagueRepo   league.Repository
	playerRepo   player.Repository
	contractRepo contract.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewContractService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	contractRepo contract.Repository,
	logger *logging.Logger,
) *ContractService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ContractService{
		leagueRepo:   leagueRepo,
		playerRepo:   playerRepo,
		contractRepo: contractRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ContractService) CreateContract(ctx context.Context, input CreateContractInput) (contract.Contract, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.CreateContract")
	defer span.End()

	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if input.LeagueID == "" {
		return contract.Contract{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return contract.Contract{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return contract.Contract{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.DraftAmount < 0 {
		return contract.Contract{}, fmt.Errorf("%w: draft amount cannot be negative", ErrInvalidInput)
	}

	lg, err := s.getLeague(ctx, input.LeagueID)
	if err != nil {
		return contract.Contract{}, err
	}

	players, err := s.playerRepo.GetByIDs(ctx, input.LeagueID, []string{input.PlayerID})
	if err != nil {
		return contract.Contract{}, fmt.Errorf("get player: %w", err)
	}
	if len(players) == 0 {
		return contract.Contract{}, fmt.Errorf("%w: player=%s league=%s", ErrNotFound, input.PlayerID, input.LeagueID)
	}

	if _, exists, err := s.contractRepo.GetActive(ctx, input.LeagueID, input.TeamID, input.PlayerID); err != nil {
		return contract.Contract{}, fmt.Errorf("check active contract: %w", err)
	} else if exists {
		return contract.Contract{}, fmt.Errorf("%w: player %s already has an active contract on team %s", ErrConflict, input.PlayerID, input.TeamID)
	}

	duration := input.Duration
	if duration == 0 {
		duration = contract.MinDuration
	}

	now := s.now().UTC()
	c := contract.Contract{
		PlayerID:    input.PlayerID,
		TeamID:      input.TeamID,
		LeagueID:    input.LeagueID,
		DraftAmount: input.DraftAmount,
		StartYear:   lg.SeasonYear,
		Duration:    duration,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return contract.Contract{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.contractRepo.Create(ctx, c)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("create contract: %w", err)
	}

	s.logger.InfoContext(ctx, "contract created",
		"league_id", created.LeagueID,
		"team_id", created.TeamID,
		"player_id", created.PlayerID,
		"draft_amount", created.DraftAmount,
		"duration", created.Duration,
	)

	return created, nil
}

// SetDuration sets the keeper term of a freshly auctioned contract. It is a
// one-shot operation: only allowed while the league's contract window is
// open, and only while the contract still carries its default duration.
func (s *ContractService) SetDuration(ctx context.Context, contractID int64, duration int) (contract.Contract, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.SetDuration")
	defer span.End()

	if contractID <= 0 {
		return contract.Contract{}, fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}
	if duration < contract.MinDuration || duration > contract.MaxDuration {
		return contract.Contract{}, fmt.Errorf("%w: duration must be between %d and %d", ErrInvalidInput, contract.MinDuration, contract.MaxDuration)
	}

	c, exists, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("get contract: %w", err)
	}
	if !exists {
		return contract.Contract{}, fmt.Errorf("%w: contract=%d", ErrNotFound, contractID)
	}
	if !c.Active {
		return contract.Contract{}, fmt.Errorf("%w: contract %d is no longer active", ErrConflict, contractID)
	}
	if c.Duration != contract.MinDuration {
		return contract.Contract{}, fmt.Errorf("%w: contract %d duration was already set to %d", ErrConflict, contractID, c.Duration)
	}

	lg, err := s.getLeague(ctx, c.LeagueID)
	if err != nil {
		return contract.Contract{}, err
	}
	if !lg.ContractWindowOpen {
		return contract.Contract{}, fmt.Errorf("%w: contract window is closed for league %s", ErrConflict, c.LeagueID)
	}
	if c.StartYear != lg.SeasonYear {
		return contract.Contract{}, fmt.Errorf("%w: only contracts auctioned this season may set a duration", ErrConflict)
	}

	if err := s.contractRepo.UpdateDuration(ctx, contractID, duration); err != nil {
		return contract.Contract{}, fmt.Errorf("update contract duration: %w", err)
	}

	c.Duration = duration
	c.UpdatedAt = s.now().UTC()

	s.logger.InfoContext(ctx, "contract duration set",
		"contract_id", contractID,
		"league_id", c.LeagueID,
		"team_id", c.TeamID,
		"duration", duration,
	)

	return c, nil
}

func (s *ContractService) ListTeamContracts(ctx context.Context, leagueID, teamID string) ([]ContractWithSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContractService.ListTeamContracts")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: league_id and team_id are required", ErrInvalidInput)
	}

	if _, err := s.getLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	out := make([]ContractWithSchedule, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, ContractWithSchedule{
			Contract: c,
			Schedule: contract.EscalatedCosts(c.DraftAmount, c.Duration, c.StartYear),
		})
	}

	return out, nil
}

func (s *ContractService) getLeague(ctx context.Context, leagueID string) (league.League, error) {
	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}
