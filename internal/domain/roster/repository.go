package roster

import (
	"context"

	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
)

// Repository describes roster snapshot reads from use cases.
type Repository interface {
	GetSnapshot(ctx context.Context, leagueID, teamID string) (Snapshot, bool, error)
	ListSnapshotsByLeague(ctx context.Context, leagueID string) ([]Snapshot, error)
}

// DropPass is everything one roster's sync pass wants to persist: the new
// snapshot, the contracts to retire, and the penalties those drops incurred.
type DropPass struct {
	LeagueID              string
	TeamID                string
	Snapshot              Snapshot
	DeactivateContractIDs []int64
	Penalties             []penalty.Penalty
}

// PassWriter commits one roster's drop pass in a single transaction. A
// partial write is worse than none: a half-applied pass would re-detect the
// same drops on the next sync and double-charge them.
type PassWriter interface {
	CommitDropPass(ctx context.Context, pass DropPass) error
}
