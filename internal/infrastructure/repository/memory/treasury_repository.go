package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
)

type TreasuryRepository struct {
	mu        sync.RWMutex
	schedules map[string]treasury.FeeSchedule
	entries   []treasury.VaultEntry
}

func scheduleKey(leagueID string, seasonYear int) string {
	return leagueID + "/" + strconv.Itoa(seasonYear)
}

func NewTreasuryRepository(schedules []treasury.FeeSchedule, entries []treasury.VaultEntry) *TreasuryRepository {
	items := make(map[string]treasury.FeeSchedule, len(schedules))
	for _, s := range schedules {
		items[scheduleKey(s.LeagueID, s.SeasonYear)] = s
	}

	return &TreasuryRepository{
		schedules: items,
		entries:   append([]treasury.VaultEntry(nil), entries...),
	}
}

func (r *TreasuryRepository) GetFeeSchedule(_ context.Context, leagueID string, seasonYear int) (treasury.FeeSchedule, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schedules[scheduleKey(leagueID, seasonYear)]
	if !ok {
		return treasury.FeeSchedule{}, false, nil
	}

	return s, true, nil
}

func (r *TreasuryRepository) ListVaultEntries(_ context.Context, leagueID, teamID string) ([]treasury.VaultEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treasury.VaultEntry, 0)
	for _, e := range r.entries {
		if e.LeagueID == leagueID && e.TeamID == teamID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *TreasuryRepository) InsertVaultEntry(_ context.Context, entry treasury.VaultEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}
