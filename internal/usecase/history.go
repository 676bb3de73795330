package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

type HistoryUseCase interface {
	// Record never blocks. Results that do not fit the queue are dropped.
	Record(result entity.RoundResult)
	Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error)
}

type historyRepo interface {
	Save(ctx context.Context, result entity.RoundResult) error
	Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error)
}

var _ HistoryUseCase = (*HistoryArchive)(nil)

// HistoryArchive writes round results on its own goroutine, so rooms never wait for storage.
type HistoryArchive struct {
	logger *slog.Logger
	repo   historyRepo
	queue  chan entity.RoundResult
}

func NewHistoryArchive(logger *slog.Logger, repo historyRepo, buffer int) *HistoryArchive {
	return &HistoryArchive{
		logger: logger.With("component", "history"),
		repo:   repo,
		queue:  make(chan entity.RoundResult, max(buffer, 1)),
	}
}

func (that *HistoryArchive) Record(result entity.RoundResult) {
	select {
	case that.queue <- result:
	default:
		that.logger.Warn("history queue is full, round result dropped", "room", result.Room, "round", result.Round)
	}
}

// Run saves queued results until ctx is done, then flushes what is left.
func (that *HistoryArchive) Run(ctx context.Context) {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			that.flush(context.WithoutCancel(ctx))
			log.Info("history archive stopped")

			return
		case result := <-that.queue:
			that.save(ctx, result)
		}
	}
}

func (that *HistoryArchive) flush(ctx context.Context) {
	for {
		select {
		case result := <-that.queue:
			that.save(ctx, result)
		default:
			return
		}
	}
}

func (that *HistoryArchive) save(ctx context.Context, result entity.RoundResult) {
	if err := that.repo.Save(ctx, result); err != nil {
		that.logger.Error("failed to save round result", "room", result.Room, "round", result.Round, "error", err)
	}
}

// Recent clamps limit to [1, MaxHistoryLimit]; zero or less means DefaultHistoryLimit.
func (that *HistoryArchive) Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	limit = min(limit, MaxHistoryLimit)

	results, err := that.repo.Recent(ctx, room, limit)
	if err != nil {
		return nil, err
	}

	if results == nil {
		results = []entity.RoundResult{}
	}

	return results, nil
}
