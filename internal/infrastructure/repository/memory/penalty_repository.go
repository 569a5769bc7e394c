package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
)

type PenaltyRepository struct {
	mu     sync.RWMutex
	items  []penalty.Penalty
	nextID int64
}

func NewPenaltyRepository(penalties []penalty.Penalty) *PenaltyRepository {
	var maxID int64
	for _, p := range penalties {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return &PenaltyRepository{
		items:  append([]penalty.Penalty(nil), penalties...),
		nextID: maxID,
	}
}

func (r *PenaltyRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]penalty.Penalty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]penalty.Penalty, 0)
	for _, p := range r.items {
		if p.LeagueID == leagueID && p.TeamID == teamID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PenaltyRepository) ListByYear(_ context.Context, leagueID string, year int) ([]penalty.Penalty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]penalty.Penalty, 0)
	for _, p := range r.items {
		if p.LeagueID == leagueID && p.Year == year {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PenaltyRepository) insert(penalties []penalty.Penalty) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for _, p := range penalties {
		r.nextID++
		p.ID = r.nextID
		p.CreatedAt = now
		r.items = append(r.items, p)
	}
}
