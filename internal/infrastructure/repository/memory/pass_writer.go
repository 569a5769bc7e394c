package memory

import (
	"context"

	"github.com/riskibarqy/keeper-league/internal/domain/roster"
)

// PassWriter applies a drop pass against the in-memory stores. It mirrors
// the all-or-nothing contract of its SQL counterpart: every validation and
// the optional CommitHook run before any store is touched, so a failed pass
// leaves the stores exactly as they were.
type PassWriter struct {
	contracts *ContractRepository
	penalties *PenaltyRepository
	rosters   *RosterRepository

	// CommitHook, when set, runs after validation and before any write.
	// Tests use it to simulate a transaction that fails mid-commit.
	CommitHook func(pass roster.DropPass) error
}

func NewPassWriter(contracts *ContractRepository, penalties *PenaltyRepository, rosters *RosterRepository) *PassWriter {
	return &PassWriter{
		contracts: contracts,
		penalties: penalties,
		rosters:   rosters,
	}
}

func (w *PassWriter) CommitDropPass(_ context.Context, pass roster.DropPass) error {
	if w.CommitHook != nil {
		if err := w.CommitHook(pass); err != nil {
			return err
		}
	}

	// Deactivation is the only step that can fail; run it first so a
	// missing contract leaves penalties and the snapshot untouched.
	if err := w.contracts.deactivate(pass.DeactivateContractIDs); err != nil {
		return err
	}

	w.penalties.insert(pass.Penalties)
	w.rosters.put(pass.Snapshot)

	return nil
}
