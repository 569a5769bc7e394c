package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID                 int64         `db:"id"`
	PublicID           string        `db:"public_id"`
	Name               string        `db:"name"`
	ExternalRefID      sql.NullInt64 `db:"external_league_id"`
	SeasonYear         int           `db:"season_year"`
	ContractWindowOpen bool          `db:"contract_window_open"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
	DeletedAt          *time.Time    `db:"deleted_at"`
}

func nullInt64ToInt64(value sql.NullInt64) int64 {
	if !value.Valid {
		return 0
	}
	return value.Int64
}
