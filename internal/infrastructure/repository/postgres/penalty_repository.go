package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
	qb "github.com/riskibarqy/keeper-league/internal/platform/querybuilder"
)

type PenaltyRepository struct {
	db *sqlx.DB
}

func NewPenaltyRepository(db *sqlx.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

func (r *PenaltyRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]penalty.Penalty, error) {
	query, args, err := qb.Select("*").From("penalties").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("year", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team penalties query: %w", err)
	}

	var rows []penaltyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team penalties: %w", err)
	}

	out := make([]penalty.Penalty, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPenaltyRow(row))
	}

	return out, nil
}

func (r *PenaltyRepository) ListByYear(ctx context.Context, leagueID string, year int) ([]penalty.Penalty, error) {
	query, args, err := qb.Select("*").From("penalties").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("year", year),
		).
		OrderBy("team_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select year penalties query: %w", err)
	}

	var rows []penaltyTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select year penalties: %w", err)
	}

	out := make([]penalty.Penalty, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPenaltyRow(row))
	}

	return out, nil
}
