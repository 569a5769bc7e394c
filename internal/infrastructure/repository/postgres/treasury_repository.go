package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
	qb "github.com/riskibarqy/keeper-league/internal/platform/querybuilder"
)

type TreasuryRepository struct {
	db *sqlx.DB
}

func NewTreasuryRepository(db *sqlx.DB) *TreasuryRepository {
	return &TreasuryRepository{db: db}
}

func (r *TreasuryRepository) GetFeeSchedule(ctx context.Context, leagueID string, seasonYear int) (treasury.FeeSchedule, bool, error) {
	query, args, err := qb.Select("*").From("fee_schedules").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("season_year", seasonYear),
		).
		ToSQL()
	if err != nil {
		return treasury.FeeSchedule{}, false, fmt.Errorf("build get fee schedule query: %w", err)
	}

	var row feeScheduleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return treasury.FeeSchedule{}, false, nil
		}
		return treasury.FeeSchedule{}, false, fmt.Errorf("get fee schedule: %w", err)
	}

	return treasury.FeeSchedule{
		LeagueID:   row.LeaguePublicID,
		SeasonYear: row.SeasonYear,
		EntryFee:   row.EntryFee,
		PerMoveFee: row.PerMoveFee,
	}, true, nil
}

func (r *TreasuryRepository) ListVaultEntries(ctx context.Context, leagueID, teamID string) ([]treasury.VaultEntry, error) {
	query, args, err := qb.Select("*").From("vault_entries").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select vault entries query: %w", err)
	}

	var rows []vaultEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select vault entries: %w", err)
	}

	out := make([]treasury.VaultEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVaultEntryRow(row))
	}

	return out, nil
}

func (r *TreasuryRepository) InsertVaultEntry(ctx context.Context, entry treasury.VaultEntry) error {
	const insertQuery = `
INSERT INTO vault_entries (public_id, league_public_id, team_public_id, season_year, amount, kind, note, created_at)
VALUES (:public_id, :league_public_id, :team_public_id, :season_year, :amount, :kind, :note, :created_at)`

	insertSQL, insertArgs, err := sqlx.Named(insertQuery, map[string]any{
		"public_id":        entry.ID,
		"league_public_id": entry.LeagueID,
		"team_public_id":   entry.TeamID,
		"season_year":      entry.SeasonYear,
		"amount":           entry.Amount,
		"kind":             string(entry.Kind),
		"note":             entry.Note,
		"created_at":       entry.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind insert vault entry query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)

	if _, err := r.db.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return fmt.Errorf("insert vault entry: %w", err)
	}

	return nil
}
