package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
)

type ContractRepository struct {
	mu     sync.RWMutex
	items  map[int64]contract.Contract
	orders []int64
	nextID int64
}

func NewContractRepository(contracts []contract.Contract) *ContractRepository {
	items := make(map[int64]contract.Contract, len(contracts))
	orders := make([]int64, 0, len(contracts))

	var maxID int64
	for _, c := range contracts {
		items[c.ID] = c
		orders = append(orders, c.ID)
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	return &ContractRepository{
		items:  items,
		orders: orders,
		nextID: maxID,
	}
}

func (r *ContractRepository) GetByID(_ context.Context, contractID int64) (contract.Contract, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[contractID]
	if !ok {
		return contract.Contract{}, false, nil
	}

	return c, true, nil
}

func (r *ContractRepository) GetActive(_ context.Context, leagueID, teamID, playerID string) (contract.Contract, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		c := r.items[id]
		if c.Active && c.LeagueID == leagueID && c.TeamID == teamID && c.PlayerID == playerID {
			return c, true, nil
		}
	}

	return contract.Contract{}, false, nil
}

func (r *ContractRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contract.Contract, 0)
	for _, id := range r.orders {
		c := r.items[id]
		if c.LeagueID == leagueID && c.TeamID == teamID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *ContractRepository) ListActiveByLeague(_ context.Context, leagueID string) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contract.Contract, 0)
	for _, id := range r.orders {
		c := r.items[id]
		if c.Active && c.LeagueID == leagueID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *ContractRepository) Create(_ context.Context, c contract.Contract) (contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	r.items[c.ID] = c
	r.orders = append(r.orders, c.ID)

	return c, nil
}

func (r *ContractRepository) UpdateDuration(_ context.Context, contractID int64, duration int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[contractID]
	if !ok {
		return fmt.Errorf("contract %d does not exist", contractID)
	}

	c.Duration = duration
	c.UpdatedAt = time.Now().UTC()
	r.items[contractID] = c

	return nil
}

func (r *ContractRepository) deactivate(contractIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range contractIDs {
		if _, ok := r.items[id]; !ok {
			return fmt.Errorf("contract %d does not exist", id)
		}
	}

	now := time.Now().UTC()
	for _, id := range contractIDs {
		c := r.items[id]
		c.Active = false
		c.UpdatedAt = now
		r.items[id] = c
	}

	return nil
}
