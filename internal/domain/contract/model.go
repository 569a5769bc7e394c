package contract

import (
	"fmt"
	"time"
)

const (
	// MinDuration is the default term for a fresh acquisition.
	MinDuration = 1
	// MaxDuration is the longest deal the league allows.
	MaxDuration = 4
)

// Contract is a team's multi-year financial claim on a player. The draft
// amount is the year-one cost; later years escalate per EscalatedCosts.
type Contract struct {
	ID          int64
	PlayerID    string
	TeamID      string
	LeagueID    string
	DraftAmount int64
	StartYear   int
	Duration    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Contract) Validate() error {
	if c.PlayerID == "" {
		return fmt.Errorf("contract player id is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("contract team id is required")
	}
	if c.LeagueID == "" {
		return fmt.Errorf("contract league id is required")
	}
	if c.DraftAmount < 0 {
		return fmt.Errorf("contract draft amount cannot be negative")
	}
	if c.StartYear <= 0 {
		return fmt.Errorf("contract start year is required")
	}
	if c.Duration < MinDuration || c.Duration > MaxDuration {
		return fmt.Errorf("contract duration must be between %d and %d years", MinDuration, MaxDuration)
	}

	return nil
}

// EndYear is the final season the contract covers.
func (c Contract) EndYear() int {
	return c.StartYear + c.Duration - 1
}

// Covers reports whether year falls inside the contract term.
func (c Contract) Covers(year int) bool {
	return year >= c.StartYear && year <= c.EndYear()
}
