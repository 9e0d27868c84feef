package memory

import (
	"context"
	"sync"

	"camp-portal/internal/domain"
)

// QuestStore keeps per-session quest lists in memory.
type QuestStore struct {
	mu     sync.RWMutex
	quests map[string][]domain.Quest
}

func NewQuestStore() *QuestStore {
	return &QuestStore{quests: make(map[string][]domain.Quest)}
}

func (s *QuestStore) Load(_ context.Context, sessionID string) ([]domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.quests[sessionID]
	if !ok {
		return nil, nil
	}
	quests := make([]domain.Quest, len(stored))
	copy(quests, stored)
	return quests, nil
}

func (s *QuestStore) Save(_ context.Context, sessionID string, quests []domain.Quest) error {
	stored := make([]domain.Quest, len(quests))
	copy(stored, quests)
	s.mu.Lock()
	s.quests[sessionID] = stored
	s.mu.Unlock()
	return nil
}
