package penalty

import (
	"fmt"
	"time"
)

// Penalty is a cap charge against a team for one future season, created when
// a contract is terminated before its natural expiration. Rows are written
// once and never mutated.
type Penalty struct {
	ID         int64
	ContractID int64
	LeagueID   string
	TeamID     string
	Year       int
	Amount     int64
	CreatedAt  time.Time
}

func (p Penalty) Validate() error {
	if p.ContractID <= 0 {
		return fmt.Errorf("penalty contract id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("penalty league id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("penalty team id is required")
	}
	if p.Year <= 0 {
		return fmt.Errorf("penalty year is required")
	}
	if p.Amount < 1 {
		return fmt.Errorf("penalty amount must be at least 1")
	}

	return nil
}
