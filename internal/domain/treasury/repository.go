package treasury

import "context"

// Repository describes treasury persistence needs from use cases.
type Repository interface {
	GetFeeSchedule(ctx context.Context, leagueID string, seasonYear int) (FeeSchedule, bool, error)
	ListVaultEntries(ctx context.Context, leagueID, teamID string) ([]VaultEntry, error)
	InsertVaultEntry(ctx context.Context, entry VaultEntry) error
}
