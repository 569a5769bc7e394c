package postgres

import (
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
)

type contractTableModel struct {
	ID             int64     `db:"id"`
	PlayerPublicID string    `db:"player_public_id"`
	TeamPublicID   string    `db:"team_public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	DraftAmount    int64     `db:"draft_amount"`
	StartYear      int       `db:"start_year"`
	Duration       int       `db:"duration"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func mapContractRow(row contractTableModel) contract.Contract {
	return contract.Contract{
		ID:          row.ID,
		PlayerID:    row.PlayerPublicID,
		TeamID:      row.TeamPublicID,
		LeagueID:    row.LeaguePublicID,
		DraftAmount: row.DraftAmount,
		StartYear:   row.StartYear,
		Duration:    row.Duration,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
