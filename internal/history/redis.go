package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "securepass:history:"

// RedisStore keeps each user's list in a Redis list that expires after ttl
// of inactivity.
type RedisStore struct {
	client   *redis.Client
	capacity int
	ttl      time.Duration
}

func NewRedisStore(client *redis.Client, capacity int, ttl time.Duration) *RedisStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RedisStore{client: client, capacity: capacity, ttl: ttl}
}

func historyKey(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

func (s *RedisStore) Push(ctx context.Context, userID int64, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	key := historyKey(userID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(s.capacity-1))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("pushing history entry: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, userID int64) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, historyKey(userID), 0, int64(s.capacity-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			slog.Warn("skipping history entry: decode failed", "user_id", userID, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, historyKey(userID)).Err()
}
