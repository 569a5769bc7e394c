package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
)

type rosterSnapshotTableModel struct {
	ID             int64          `db:"id"`
	LeaguePublicID string         `db:"league_public_id"`
	TeamPublicID   string         `db:"team_public_id"`
	PlayerIDs      pq.StringArray `db:"player_public_ids"`
	SyncedAt       time.Time      `db:"synced_at"`
}

func mapRosterSnapshotRow(row rosterSnapshotTableModel) roster.Snapshot {
	return roster.Snapshot{
		LeagueID:  row.LeaguePublicID,
		TeamID:    row.TeamPublicID,
		PlayerIDs: []string(row.PlayerIDs),
		SyncedAt:  row.SyncedAt,
	}
}
