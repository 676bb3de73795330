package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/scribble-backend/internal/entity"
)

type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) Save(ctx context.Context, result entity.RoundResult) error {
	return m.Called(ctx, result).Error(0)
}

func (m *mockHistoryRepo) Recent(ctx context.Context, room string, limit int) ([]entity.RoundResult, error) {
	args := m.Called(ctx, room, limit)

	results, _ := args.Get(0).([]entity.RoundResult)

	return results, args.Error(1)
}

type mockWordRepo struct {
	mock.Mock
}

func (m *mockWordRepo) All(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	words, _ := args.Get(0).([]string)

	return words, args.Error(1)
}

func (m *mockWordRepo) Add(ctx context.Context, words ...string) error {
	return m.Called(ctx, words).Error(0)
}
