package postgres

import (
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
)

type feeScheduleTableModel struct {
	ID             int64     `db:"id"`
	LeaguePublicID string    `db:"league_public_id"`
	SeasonYear     int       `db:"season_year"`
	EntryFee       int64     `db:"entry_fee"`
	PerMoveFee     int64     `db:"per_move_fee"`
	CreatedAt      time.Time `db:"created_at"`
}

type vaultEntryTableModel struct {
	PublicID       string    `db:"public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	TeamPublicID   string    `db:"team_public_id"`
	SeasonYear     int       `db:"season_year"`
	Amount         int64     `db:"amount"`
	Kind           string    `db:"kind"`
	Note           string    `db:"note"`
	CreatedAt      time.Time `db:"created_at"`
}

func mapVaultEntryRow(row vaultEntryTableModel) treasury.VaultEntry {
	return treasury.VaultEntry{
		ID:         row.PublicID,
		LeagueID:   row.LeaguePublicID,
		TeamID:     row.TeamPublicID,
		SeasonYear: row.SeasonYear,
		Amount:     row.Amount,
		Kind:       treasury.EntryKind(row.Kind),
		Note:       row.Note,
		CreatedAt:  row.CreatedAt,
	}
}
