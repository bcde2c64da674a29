// File: services/chat/history.go
package chat

import (
	"context"
	"encoding/json"
	"time"

	"clinicdesk/models"

	"github.com/go-redis/redis/v8"
)

const chatHistoryPrefix = "chat:history:"

// historyCap bounds how much transcript is replayed to the assistant.
const historyCap = 50

// RedisHistoryStore caches the recent transcript per session so a chat turn
// does not re-read Mongo on every message.
type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, ttl: ttl}
}

func (s *RedisHistoryStore) Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := chatHistoryPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *RedisHistoryStore) Set(ctx context.Context, sessionID string, history []models.ChatMessage) error {
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	key := chatHistoryPrefix + sessionID
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatHistoryPrefix+sessionID).Err()
}
