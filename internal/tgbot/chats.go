package tgbot

import (
	"sync"

	"github.com/google/uuid"
)

// chatRounds remembers the round played in each chat.
type chatRounds struct {
	mu sync.RWMutex
	m  map[int64]uuid.UUID
}

func newChatRounds() *chatRounds {
	return &chatRounds{
		m: make(map[int64]uuid.UUID),
	}
}

func (c *chatRounds) Set(chatID int64, roundID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[chatID] = roundID
}

func (c *chatRounds) Get(chatID int64) (uuid.UUID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.m[chatID]
	return id, ok
}
