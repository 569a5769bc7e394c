package contract

import "context"

// Repository describes contract persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, contractID int64) (Contract, bool, error)
	// GetActive returns the single active contract for a (player, team,
	// league) triple, if one exists.
	GetActive(ctx context.Context, leagueID, teamID, playerID string) (Contract, bool, error)
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]Contract, error)
	ListActiveByLeague(ctx context.Context, leagueID string) ([]Contract, error)
	Create(ctx context.Context, c Contract) (Contract, error)
	UpdateDuration(ctx context.Context, contractID int64, duration int) error
}
