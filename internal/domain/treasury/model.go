package treasury

import (
	"fmt"
	"time"
)

// EntryKind classifies a vault ledger row.
type EntryKind string

const (
	EntryKindFee           EntryKind = "fee"
	EntryKindPayout        EntryKind = "payout"
	EntryKindPenaltyCredit EntryKind = "penalty_credit"
)

var allEntryKinds = map[EntryKind]struct{}{
	EntryKindFee:           {},
	EntryKindPayout:        {},
	EntryKindPenaltyCredit: {},
}

// FeeSchedule is a league season's fee structure.
type FeeSchedule struct {
	LeagueID   string
	SeasonYear int
	EntryFee   int64
	PerMoveFee int64
}

// VaultEntry is one bookkeeping row in a league's prize vault. Amounts are
// cents; fees are positive credits to the vault, payouts negative.
type VaultEntry struct {
	ID         string
	LeagueID   string
	TeamID     string
	SeasonYear int
	Amount     int64
	Kind       EntryKind
	Note       string
	CreatedAt  time.Time
}

func (e VaultEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("vault entry id is required")
	}
	if e.LeagueID == "" {
		return fmt.Errorf("vault entry league id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("vault entry team id is required")
	}
	if e.SeasonYear <= 0 {
		return fmt.Errorf("vault entry season year is required")
	}
	if e.Amount == 0 {
		return fmt.Errorf("vault entry amount cannot be zero")
	}
	if _, ok := allEntryKinds[e.Kind]; !ok {
		return fmt.Errorf("invalid vault entry kind: %s", e.Kind)
	}

	return nil
}

// Balance sums entries; payouts carry negative amounts already.
func Balance(entries []VaultEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
