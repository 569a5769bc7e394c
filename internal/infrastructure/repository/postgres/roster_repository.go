package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
	qb "github.com/riskibarqy/keeper-league/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) GetSnapshot(ctx context.Context, leagueID, teamID string) (roster.Snapshot, bool, error) {
	query, args, err := qb.Select("*").From("roster_snapshots").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		ToSQL()
	if err != nil {
		return roster.Snapshot{}, false, fmt.Errorf("build get roster snapshot query: %w", err)
	}

	var row rosterSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Snapshot{}, false, nil
		}
		return roster.Snapshot{}, false, fmt.Errorf("get roster snapshot: %w", err)
	}

	return mapRosterSnapshotRow(row), true, nil
}

func (r *RosterRepository) ListSnapshotsByLeague(ctx context.Context, leagueID string) ([]roster.Snapshot, error) {
	query, args, err := qb.Select("*").From("roster_snapshots").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster snapshots query: %w", err)
	}

	var rows []rosterSnapshotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster snapshots: %w", err)
	}

	out := make([]roster.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRosterSnapshotRow(row))
	}

	return out, nil
}

// CommitDropPass writes one team's drop pass in a single transaction:
// contract deactivations, penalty inserts, and the snapshot that makes the
// pass idempotent all land together or not at all.
func (r *RosterRepository) CommitDropPass(ctx context.Context, pass roster.DropPass) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for drop pass: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(pass.DeactivateContractIDs) > 0 {
		const deactivateQuery = `
UPDATE contracts
SET active = FALSE, updated_at = NOW()
WHERE id = ANY($1)
  AND active = TRUE`

		result, err := tx.ExecContext(ctx, deactivateQuery, pq.Array(pass.DeactivateContractIDs))
		if err != nil {
			return fmt.Errorf("deactivate dropped contracts: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected deactivate dropped contracts: %w", err)
		}
		if affected != int64(len(pass.DeactivateContractIDs)) {
			return fmt.Errorf("deactivate dropped contracts: expected %d rows, updated %d", len(pass.DeactivateContractIDs), affected)
		}
	}

	const insertPenaltyQuery = `
INSERT INTO penalties (contract_id, league_public_id, team_public_id, year, amount)
VALUES (:contract_id, :league_public_id, :team_public_id, :year, :amount)`

	for _, p := range pass.Penalties {
		insertSQL, insertArgs, err := sqlx.Named(insertPenaltyQuery, map[string]any{
			"contract_id":      p.ContractID,
			"league_public_id": p.LeagueID,
			"team_public_id":   p.TeamID,
			"year":             p.Year,
			"amount":           p.Amount,
		})
		if err != nil {
			return fmt.Errorf("bind insert penalty query: %w", err)
		}
		insertSQL = tx.Rebind(insertSQL)
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert penalty: %w", err)
		}
	}

	const upsertSnapshotQuery = `
INSERT INTO roster_snapshots (league_public_id, team_public_id, player_public_ids, synced_at)
VALUES (:league_public_id, :team_public_id, :player_public_ids, :synced_at)
ON CONFLICT (league_public_id, team_public_id)
DO UPDATE SET
    player_public_ids = EXCLUDED.player_public_ids,
    synced_at = EXCLUDED.synced_at`

	upsertSQL, upsertArgs, err := sqlx.Named(upsertSnapshotQuery, map[string]any{
		"league_public_id":  pass.Snapshot.LeagueID,
		"team_public_id":    pass.Snapshot.TeamID,
		"player_public_ids": pq.StringArray(pass.Snapshot.PlayerIDs),
		"synced_at":         pass.Snapshot.SyncedAt,
	})
	if err != nil {
		return fmt.Errorf("bind upsert roster snapshot query: %w", err)
	}
	upsertSQL = tx.Rebind(upsertSQL)
	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
		return fmt.Errorf("upsert roster snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit drop pass tx: %w", err)
	}

	return nil
}
