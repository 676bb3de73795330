package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const wordsKey = "words"

// WordRepository is the shared word list kept in a redis set.
type WordRepository interface {
	All(ctx context.Context) ([]string, error)
	Add(ctx context.Context, words ...string) error
}

type dbWords struct {
	client *redis.Client
}

func NewWordRepository(client *redis.Client) WordRepository {
	return &dbWords{
		client: client,
	}
}

// All returns the words sorted, so a bank built from them does not depend on set iteration order.
func (that *dbWords) All(ctx context.Context) ([]string, error) {
	words, err := that.client.SMembers(ctx, wordsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	sort.Strings(words)

	return words, nil
}

func (that *dbWords) Add(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}

	members := make([]any, 0, len(words))
	for _, word := range words {
		members = append(members, word)
	}

	if err := that.client.SAdd(ctx, wordsKey, members...).Err(); err != nil {
		return fmt.Errorf("failed to add words: %w", err)
	}

	return nil
}
