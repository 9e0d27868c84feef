package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"camp-portal/internal/domain"
)

// QuestStore persists each session's quest board as a JSON blob under a
// fixed per-session key, surviving portal restarts.
type QuestStore struct {
	client *redis.Client
}

func NewQuestStore(client *redis.Client) *QuestStore {
	return &QuestStore{client: client}
}

func (s *QuestStore) Load(ctx context.Context, sessionID string) ([]domain.Quest, error) {
	blob, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quests []domain.Quest
	if err := json.Unmarshal(blob, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (s *QuestStore) Save(ctx context.Context, sessionID string, quests []domain.Quest) error {
	blob, err := json.Marshal(quests)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sessionID), blob, 0).Err()
}

func (s *QuestStore) key(sessionID string) string {
	return "portal:quests:" + sessionID
}
