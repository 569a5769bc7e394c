package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the development fixtures into an empty database so a
// fresh environment has leagues to sync against. It is a no-op once any
// league row exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, external_league_id, season_year, contract_window_open)
VALUES (:public_id, :name, :external_league_id, :season_year, :contract_window_open)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":            l.ID,
			"name":                 l.Name,
			"external_league_id":   l.ExternalRefID,
			"season_year":          l.SeasonYear,
			"contract_window_open": l.ContractWindowOpen,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, league_public_id, name, position, external_player_id)
VALUES (:public_id, :league_public_id, :name, :position, :external_player_id)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":          p.ID,
			"league_public_id":   p.LeagueID,
			"name":               p.Name,
			"position":           string(p.Position),
			"external_player_id": p.ExternalRefID,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, fs := range memory.SeedFeeSchedules() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO fee_schedules (league_public_id, season_year, entry_fee, per_move_fee)
VALUES (:league_public_id, :season_year, :entry_fee, :per_move_fee)
ON CONFLICT (league_public_id, season_year) DO NOTHING`, map[string]any{
			"league_public_id": fs.LeagueID,
			"season_year":      fs.SeasonYear,
			"entry_fee":        fs.EntryFee,
			"per_move_fee":     fs.PerMoveFee,
		})
		if err != nil {
			return fmt.Errorf("bind seed fee schedule %s/%d query: %w", fs.LeagueID, fs.SeasonYear, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed fee schedule %s/%d: %w", fs.LeagueID, fs.SeasonYear, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
