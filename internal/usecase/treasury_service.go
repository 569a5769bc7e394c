package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
	"github.com/riskibarqy/keeper-league/internal/platform/id"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
)

// TreasuryService keeps the league prize vault ledger: entry fees in,
// payouts out, penalty credits when commissioners settle penalties in cash.
type TreasuryService struct {
	leagueRepo   league.Repository
	treasuryRepo treasury.Repository
	idGenerator  id.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewTreasuryService(
	leagueRepo league.Repository,
	treasuryRepo treasury.Repository,
	idGenerator id.Generator,
	logger *logging.Logger,
) *TreasuryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TreasuryService{
		leagueRepo:   leagueRepo,
		treasuryRepo: treasuryRepo,
		idGenerator:  idGenerator,
		logger:       logger,
		now:          time.Now,
	}
}

// VaultView is a team's ledger with its running balance.
type VaultView struct {
	LeagueID string                `json:"league_id"`
	TeamID   string                `json:"team_id"`
	Entries  []treasury.VaultEntry `json:"entries"`
	Balance  int64                 `json:"balance"`
}

func (s *TreasuryService) GetVault(ctx context.Context, leagueID, teamID string) (VaultView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.GetVault")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return VaultView{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	entries, err := s.treasuryRepo.ListVaultEntries(ctx, leagueID, teamID)
	if err != nil {
		return VaultView{}, fmt.Errorf("list vault entries: %w", err)
	}

	return VaultView{
		LeagueID: leagueID,
		TeamID:   teamID,
		Entries:  entries,
		Balance:  treasury.Balance(entries),
	}, nil
}

// RecordEntryFee charges a team its league entry fee for the season,
// using the season's configured fee schedule.
func (s *TreasuryService) RecordEntryFee(ctx context.Context, leagueID, teamID string) (treasury.VaultEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.RecordEntryFee")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return treasury.VaultEntry{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return treasury.VaultEntry{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	schedule, exists, err := s.treasuryRepo.GetFeeSchedule(ctx, leagueID, lg.SeasonYear)
	if err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("get fee schedule: %w", err)
	}
	if !exists {
		return treasury.VaultEntry{}, fmt.Errorf("%w: no fee schedule for league %s season %d", ErrNotFound, leagueID, lg.SeasonYear)
	}
	if schedule.EntryFee <= 0 {
		return treasury.VaultEntry{}, fmt.Errorf("%w: fee schedule for league %s season %d has no entry fee", ErrDataIntegrity, leagueID, lg.SeasonYear)
	}

	return s.insertEntry(ctx, treasury.VaultEntry{
		LeagueID:   leagueID,
		TeamID:     teamID,
		SeasonYear: lg.SeasonYear,
		Amount:     schedule.EntryFee,
		Kind:       treasury.EntryKindFee,
		Note:       fmt.Sprintf("entry fee season %d", lg.SeasonYear),
	})
}

// RecordPayout withdraws winnings from the vault. The amount is supplied
// positive and stored negative.
func (s *TreasuryService) RecordPayout(ctx context.Context, leagueID, teamID string, amount int64, note string) (treasury.VaultEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TreasuryService.RecordPayout")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return treasury.VaultEntry{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}
	if amount <= 0 {
		return treasury.VaultEntry{}, fmt.Errorf("%w: payout amount must be positive", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return treasury.VaultEntry{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return s.insertEntry(ctx, treasury.VaultEntry{
		LeagueID:   leagueID,
		TeamID:     teamID,
		SeasonYear: lg.SeasonYear,
		Amount:     -amount,
		Kind:       treasury.EntryKindPayout,
		Note:       note,
	})
}

func (s *TreasuryService) insertEntry(ctx context.Context, entry treasury.VaultEntry) (treasury.VaultEntry, error) {
	entryID, err := s.idGenerator.NewID()
	if err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("generate vault entry id: %w", err)
	}

	entry.ID = entryID
	entry.CreatedAt = s.now().UTC()
	if err := entry.Validate(); err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.treasuryRepo.InsertVaultEntry(ctx, entry); err != nil {
		return treasury.VaultEntry{}, fmt.Errorf("insert vault entry: %w", err)
	}

	s.logger.InfoContext(ctx, "vault entry recorded",
		"league_id", entry.LeagueID,
		"team_id", entry.TeamID,
		"kind", string(entry.Kind),
		"amount", entry.Amount,
	)
	return entry, nil
}
