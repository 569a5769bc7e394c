package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/keeper-league/internal/domain/roster"
)

type RosterRepository struct {
	mu     sync.RWMutex
	items  map[string]roster.Snapshot
	orders []string
}

func snapshotKey(leagueID, teamID string) string {
	return leagueID + "/" + teamID
}

func NewRosterRepository(snapshots []roster.Snapshot) *RosterRepository {
	items := make(map[string]roster.Snapshot, len(snapshots))
	orders := make([]string, 0, len(snapshots))

	for _, s := range snapshots {
		key := snapshotKey(s.LeagueID, s.TeamID)
		items[key] = s
		orders = append(orders, key)
	}

	return &RosterRepository{
		items:  items,
		orders: orders,
	}
}

func (r *RosterRepository) GetSnapshot(_ context.Context, leagueID, teamID string) (roster.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[snapshotKey(leagueID, teamID)]
	if !ok {
		return roster.Snapshot{}, false, nil
	}

	return s, true, nil
}

func (r *RosterRepository) ListSnapshotsByLeague(_ context.Context, leagueID string) ([]roster.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Snapshot, 0)
	for _, key := range r.orders {
		s := r.items[key]
		if s.LeagueID == leagueID {
			out = append(out, s)
		}
	}

	return out, nil
}

func (r *RosterRepository) put(s roster.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := snapshotKey(s.LeagueID, s.TeamID)
	if _, exists := r.items[key]; !exists {
		r.orders = append(r.orders, key)
	}
	r.items[key] = s
}
