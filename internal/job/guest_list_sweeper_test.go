package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCompareListRepo struct {
	mock.Mock
}

func (m *mockCompareListRepo) FindByIdentity(ctx context.Context, identity entity.Identity) (*entity.CompareList, error) {
	args := m.Called(ctx, identity)
	list, _ := args.Get(0).(*entity.CompareList)
	return list, args.Error(1)
}

func (m *mockCompareListRepo) Create(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) UpdateProducts(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) Delete(ctx context.Context, list *entity.CompareList) (bool, error) {
	args := m.Called(ctx, list)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompareListRepo) DeleteStaleGuestLists(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func TestGuestListSweeper_Run(t *testing.T) {
	now := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)
	repo := new(mockCompareListRepo)
	repo.On("DeleteStaleGuestLists", mock.Anything, now.Add(-720*time.Hour)).Return(int64(7), nil).Once()

	sweeper := NewGuestListSweeper(repo, 720*time.Hour, zap.NewNop())
	sweeper.now = func() time.Time { return now }

	deleted, err := sweeper.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	repo.AssertExpectations(t)
}

func TestGuestListSweeper_RunError(t *testing.T) {
	repo := new(mockCompareListRepo)
	repo.On("DeleteStaleGuestLists", mock.Anything, mock.Anything).Return(int64(0), errors.New("locked")).Once()

	_, err := NewGuestListSweeper(repo, time.Hour, zap.NewNop()).Run(context.Background())
	assert.EqualError(t, err, "locked")
}

func TestGuestListSweeper_Schedule(t *testing.T) {
	scheduler, err := gocron.NewScheduler()
	require.NoError(t, err)
	t.Cleanup(func() { _ = scheduler.Shutdown() })

	sweeper := NewGuestListSweeper(new(mockCompareListRepo), time.Hour, zap.NewNop())

	require.NoError(t, sweeper.Schedule(scheduler, "0 3 * * *"))
	assert.Len(t, scheduler.Jobs(), 1)

	assert.Error(t, sweeper.Schedule(scheduler, "not a cron"))
}
