package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	qb "github.com/riskibarqy/keeper-league/internal/platform/querybuilder"
)

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID int64) (contract.Contract, bool, error) {
	query, args, err := qb.Select("*").From("contracts").
		Where(qb.Eq("id", contractID)).
		ToSQL()
	if err != nil {
		return contract.Contract{}, false, fmt.Errorf("build get contract by id query: %w", err)
	}

	var row contractTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contract.Contract{}, false, nil
		}
		return contract.Contract{}, false, fmt.Errorf("get contract by id: %w", err)
	}

	return mapContractRow(row), true, nil
}

func (r *ContractRepository) GetActive(ctx context.Context, leagueID, teamID, playerID string) (contract.Contract, bool, error) {
	query, args, err := qb.Select("*").From("contracts").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.Eq("player_public_id", playerID),
			qb.Raw("active = TRUE"),
		).
		OrderBy("id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return contract.Contract{}, false, fmt.Errorf("build get active contract query: %w", err)
	}

	var row contractTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contract.Contract{}, false, nil
		}
		return contract.Contract{}, false, fmt.Errorf("get active contract: %w", err)
	}

	return mapContractRow(row), true, nil
}

func (r *ContractRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]contract.Contract, error) {
	query, args, err := qb.Select("*").From("contracts").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team contracts query: %w", err)
	}

	var rows []contractTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team contracts: %w", err)
	}

	out := make([]contract.Contract, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapContractRow(row))
	}

	return out, nil
}

func (r *ContractRepository) ListActiveByLeague(ctx context.Context, leagueID string) ([]contract.Contract, error) {
	query, args, err := qb.Select("*").From("contracts").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Raw("active = TRUE"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active league contracts query: %w", err)
	}

	var rows []contractTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active league contracts: %w", err)
	}

	out := make([]contract.Contract, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapContractRow(row))
	}

	return out, nil
}

func (r *ContractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	const insertQuery = `
INSERT INTO contracts (player_public_id, team_public_id, league_public_id, draft_amount, start_year, duration, active)
VALUES (:player_public_id, :team_public_id, :league_public_id, :draft_amount, :start_year, :duration, :active)
RETURNING id, created_at, updated_at`

	insertSQL, insertArgs, err := sqlx.Named(insertQuery, map[string]any{
		"player_public_id": c.PlayerID,
		"team_public_id":   c.TeamID,
		"league_public_id": c.LeagueID,
		"draft_amount":     c.DraftAmount,
		"start_year":       c.StartYear,
		"duration":         c.Duration,
		"active":           c.Active,
	})
	if err != nil {
		return contract.Contract{}, fmt.Errorf("bind insert contract query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)

	if err := r.db.QueryRowxContext(ctx, insertSQL, insertArgs...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return contract.Contract{}, fmt.Errorf("insert contract: %w", err)
	}

	return c, nil
}

func (r *ContractRepository) UpdateDuration(ctx context.Context, contractID int64, duration int) error {
	const updateQuery = `
UPDATE contracts
SET duration = :duration, updated_at = NOW()
WHERE id = :id`

	updateSQL, updateArgs, err := sqlx.Named(updateQuery, map[string]any{
		"duration": duration,
		"id":       contractID,
	})
	if err != nil {
		return fmt.Errorf("bind update contract duration query: %w", err)
	}
	updateSQL = r.db.Rebind(updateSQL)

	result, err := r.db.ExecContext(ctx, updateSQL, updateArgs...)
	if err != nil {
		return fmt.Errorf("update contract duration: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update contract duration: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update contract duration: not found")
	}

	return nil
}
