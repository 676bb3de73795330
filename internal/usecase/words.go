package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/scribble-backend/internal/config"
	"github.com/rocketscienceinc/scribble-backend/internal/wordbank"
)

type wordRepo interface {
	All(ctx context.Context) ([]string, error)
	Add(ctx context.Context, words ...string) error
}

// LoadWordBank builds the shared bank from the configured source. An empty redis set is
// seeded with the builtin words so a fresh deployment can play right away.
func LoadWordBank(ctx context.Context, logger *slog.Logger, conf config.Words, repo wordRepo) (*wordbank.Bank, error) {
	log := logger.With("method", "LoadWordBank", "source", conf.Source)

	var (
		words []string
		err   error
	)

	switch conf.Source {
	case config.WordsSourceFile:
		words, err = wordbank.FromFile(conf.File)
	case config.WordsSourceRedis:
		words, err = loadRedisWords(ctx, log, repo)
	default:
		words = wordbank.Builtin()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	bank, err := wordbank.New(words, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build word bank from %s: %w", conf.Source, err)
	}

	log.Info("word bank loaded", "words", bank.Len())

	return bank, nil
}

func loadRedisWords(ctx context.Context, log *slog.Logger, repo wordRepo) ([]string, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: redis word source without a repository", config.ErrInvalidConfig)
	}

	words, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}

	if len(words) > 0 {
		return words, nil
	}

	log.Info("redis word set is empty, seeding builtin words")

	words = wordbank.Builtin()
	if err = repo.Add(ctx, words...); err != nil {
		return nil, err
	}

	return words, nil
}
