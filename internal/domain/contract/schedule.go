package contract

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrOutOfTerm reports a drop year outside the contract's span. Callers warn
// and skip rather than fail the whole pass; the condition points at an
// upstream sequencing bug, not at this contract.
var ErrOutOfTerm = errors.New("drop year outside contract term")

var (
	escalationRate = decimal.NewFromFloat(1.10)
	penaltyRate    = decimal.NewFromFloat(0.25)
)

// YearCost is one season's cost on a contract's escalation schedule.
type YearCost struct {
	Year int
	Cost int64
}

// PenaltyCharge is one computed cap charge for a terminated contract.
type PenaltyCharge struct {
	Year   int
	Amount int64
}

// EscalatedCosts returns the per-season cost schedule: the draft amount in
// year one, then a 10% raise each season rounded up to the whole dollar.
// The league convention is that fractions always round against the team.
func EscalatedCosts(initialCost int64, duration, startYear int) []YearCost {
	if duration < 1 {
		return nil
	}

	out := make([]YearCost, 0, duration)
	cost := initialCost
	for i := 0; i < duration; i++ {
		if i > 0 {
			cost = escalate(cost)
		}
		out = append(out, YearCost{Year: startYear + i, Cost: cost})
	}

	return out
}

// CostAt reads the schedule at index, continuing the escalate-then-ceil rule
// past the final year when index runs beyond the contract's length. Penalty
// math needs costs for seasons the original deal never covered.
func CostAt(schedule []YearCost, index int) int64 {
	if len(schedule) == 0 || index < 0 {
		return 0
	}
	if index < len(schedule) {
		return schedule[index].Cost
	}

	cost := schedule[len(schedule)-1].Cost
	for i := len(schedule); i <= index; i++ {
		cost = escalate(cost)
	}
	return cost
}

// DropCharges computes the penalty installments owed when a contract is
// terminated in dropYear. An off-season drop charges the drop year itself;
// an in-season drop defers the first charge to the following year. Each
// installment is 25% of the salary the player would have earned one
// contract-year past the drop point, rounded half-up, never below 1.
func DropCharges(c Contract, dropYear int, offseason bool) ([]PenaltyCharge, error) {
	if c.Duration < MinDuration {
		return nil, fmt.Errorf("contract %d has non-positive duration %d", c.ID, c.Duration)
	}
	if c.DraftAmount < 0 {
		return nil, fmt.Errorf("contract %d has negative draft amount %d", c.ID, c.DraftAmount)
	}
	if !c.Covers(dropYear) {
		return nil, fmt.Errorf("%w: contract %d term %d-%d, dropped %d", ErrOutOfTerm, c.ID, c.StartYear, c.EndYear(), dropYear)
	}

	firstYear := dropYear
	if !offseason {
		firstYear = dropYear + 1
	}

	yearsIn := dropYear - c.StartYear
	count := c.Duration - yearsIn
	schedule := EscalatedCosts(c.DraftAmount, c.Duration, c.StartYear)

	out := make([]PenaltyCharge, 0, count)
	for j := 0; j < count; j++ {
		basis := CostAt(schedule, yearsIn+j+1)
		out = append(out, PenaltyCharge{
			Year:   firstYear + j,
			Amount: penaltyAmount(basis),
		})
	}

	return out, nil
}

func escalate(cost int64) int64 {
	return decimal.NewFromInt(cost).Mul(escalationRate).Ceil().IntPart()
}

func penaltyAmount(basis int64) int64 {
	amount := decimal.NewFromInt(basis).Mul(penaltyRate).Round(0).IntPart()
	if amount < 1 {
		return 1
	}
	return amount
}
