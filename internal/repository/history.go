package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

// HistoryRepository keeps the most recent round results of every room, newest first.
type HistoryRepository interface {
	Save(ctx context.Context, result entity.RoundResult) error
	Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error)
}

type dbHistory struct {
	client *redis.Client
	size   int
	ttl    time.Duration
}

// NewHistoryRepository stores up to size results per room in a redis list that expires ttl after the last write.
func NewHistoryRepository(client *redis.Client, size int, ttl time.Duration) HistoryRepository {
	return &dbHistory{
		client: client,
		size:   size,
		ttl:    ttl,
	}
}

func historyKey(room string) string {
	return "history:" + room
}

func (that *dbHistory) Save(ctx context.Context, result entity.RoundResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal round result: %w", err)
	}

	key := historyKey(result.Room)

	pipe := that.client.TxPipeline()
	pipe.LPush(ctx, key, resultJSON)
	if that.size > 0 {
		pipe.LTrim(ctx, key, 0, int64(that.size-1))
	}
	if that.ttl > 0 {
		pipe.Expire(ctx, key, that.ttl)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round result: %w", err)
	}

	return nil
}

func (that *dbHistory) Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error) {
	if limit <= 0 {
		return []entity.RoundResult{}, nil
	}

	response, err := that.client.LRange(ctx, historyKey(room), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read round history: %w", err)
	}

	results := make([]entity.RoundResult, 0, len(response))
	for _, raw := range response {
		var result entity.RoundResult
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round result: %w", err)
		}

		results = append(results, result)
	}

	return results, nil
}

type memoryHistory struct {
	mu    sync.RWMutex
	size  int
	rooms map[string][]entity.RoundResult
}

// NewMemoryHistoryRepository is used when redis is disabled. History does not survive a restart.
func NewMemoryHistoryRepository(size int) HistoryRepository {
	return &memoryHistory{
		size:  size,
		rooms: make(map[string][]entity.RoundResult),
	}
}

func (that *memoryHistory) Save(_ context.Context, result entity.RoundResult) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	results := append([]entity.RoundResult{result}, that.rooms[result.Room]...)
	if that.size > 0 && len(results) > that.size {
		results = results[:that.size]
	}

	that.rooms[result.Room] = results

	return nil
}

func (that *memoryHistory) Recent(_ context.Context, room string, limit int) ([]entity.RoundResult, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	results := that.rooms[room]
	if limit < len(results) {
		results = results[:max(limit, 0)]
	}

	return slices.Clone(results), nil
}
