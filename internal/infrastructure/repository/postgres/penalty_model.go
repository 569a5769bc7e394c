package postgres

import (
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
)

type penaltyTableModel struct {
	ID             int64     `db:"id"`
	ContractID     int64     `db:"contract_id"`
	LeaguePublicID string    `db:"league_public_id"`
	TeamPublicID   string    `db:"team_public_id"`
	Year           int       `db:"year"`
	Amount         int64     `db:"amount"`
	CreatedAt      time.Time `db:"created_at"`
}

func mapPenaltyRow(row penaltyTableModel) penalty.Penalty {
	return penalty.Penalty{
		ID:         row.ID,
		ContractID: row.ContractID,
		LeagueID:   row.LeaguePublicID,
		TeamID:     row.TeamPublicID,
		Year:       row.Year,
		Amount:     row.Amount,
		CreatedAt:  row.CreatedAt,
	}
}
