package penalty

import "context"

// Repository describes penalty persistence needs from use cases. Inserts
// happen only through the sync pass writer so they share its transaction.
type Repository interface {
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]Penalty, error)
	ListByYear(ctx context.Context, leagueID string, year int) ([]Penalty, error)
}
