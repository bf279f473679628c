package mem

import (
	"sort"
	"sync"

	"github.com/goserg/vegasgolf/internal/domain"

	"github.com/google/uuid"
)

// Cache keeps rounds in progress.
type Cache struct {
	mu     sync.RWMutex
	rounds map[uuid.UUID]domain.Round
}

func New() *Cache {
	return &Cache{
		rounds: make(map[uuid.UUID]domain.Round),
	}
}

func (c *Cache) Put(round domain.Round) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rounds[round.ID] = round
}

func (c *Cache) Get(id uuid.UUID) (domain.Round, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	round, ok := c.rounds[id]
	return round, ok
}

func (c *Cache) Delete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.rounds, id)
}

// Update runs fn on the cached round under the write lock and stores the
// returned round unless fn fails.
func (c *Cache) Update(id uuid.UUID, fn func(domain.Round) (domain.Round, error)) (domain.Round, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	round, ok := c.rounds[id]
	if !ok {
		return domain.Round{}, false, nil
	}
	updated, err := fn(round)
	if err != nil {
		return round, true, err
	}
	c.rounds[id] = updated
	return updated, true, nil
}

// List returns rounds in progress, newest first.
func (c *Cache) List() []domain.Round {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rounds := make([]domain.Round, 0, len(c.rounds))
	for _, round := range c.rounds {
		rounds = append(rounds, round)
	}
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].CreatedAt.After(rounds[j].CreatedAt)
	})
	return rounds
}
