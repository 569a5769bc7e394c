package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	LeaguePublicID string        `db:"league_public_id"`
	Name           string        `db:"name"`
	Position       string        `db:"position"`
	ExternalRefID  sql.NullInt64 `db:"external_player_id"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}
