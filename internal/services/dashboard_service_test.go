package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"seacatering/internal/models/db_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

// MockDashboardRepository is a mock implementation of DashboardRepository.
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) FindInWindow(ctx context.Context, start, end int64) ([]db_models.Subscription, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Subscription), args.Error(1)
}

func (m *MockDashboardRepository) FindCreatedBetween(ctx context.Context, start, end int64) ([]db_models.Subscription, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Subscription), args.Error(1)
}

func (m *MockDashboardRepository) CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) StatusCounts(ctx context.Context) ([]repositories.StatusCountRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.StatusCountRow), args.Error(1)
}

func adminAuth() utils.AuthContext {
	return utils.AuthContext{
		UserID:   uuid.New(),
		Email:    "admin@example.com",
		FullName: "Admin",
		Role:     "admin",
	}
}

func subAt(created time.Time, status db_models.SubscriptionStatus, total int64) db_models.Subscription {
	sub := db_models.Subscription{
		Status:     status,
		TotalPrice: decimal.NewFromInt(total),
	}
	sub.ID = uuid.New()
	sub.CreatedAt = created.Unix()
	return sub
}

func TestDashboardService_GetMetrics(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	t.Run("non-admin is rejected", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		service := NewDashboardService(repo)

		metrics, err := service.GetMetrics(context.Background(), testAuth(), start, end)

		assert.ErrorIs(t, err, utils.ErrAdminOnly)
		assert.Nil(t, metrics)
		repo.AssertNotCalled(t, "FindInWindow", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("single active subscription in window", func(t *testing.T) {
		repo := new(MockDashboardRepository)

		inside := subAt(start.AddDate(0, 0, 10), db_models.SubStatusActive, 45000)
		repo.On("FindInWindow", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{inside}, nil)
		repo.On("CountByStatus", mock.Anything, db_models.SubStatusActive).Return(int64(1), nil)

		service := NewDashboardService(repo)
		metrics, err := service.GetMetrics(context.Background(), adminAuth(), start, end)

		assert.NoError(t, err)
		if assert.NotNil(t, metrics) {
			assert.Equal(t, int64(1), metrics.NewSubscriptions)
			assert.Equal(t, int64(0), metrics.Reactivations)
			assert.Equal(t, int64(1), metrics.ActiveSubscriptions)
			assert.True(t, metrics.MonthlyRecurringRevenue.Equal(decimal.NewFromInt(45000)),
				"got %s", metrics.MonthlyRecurringRevenue)
		}
		repo.AssertExpectations(t)
	})

	t.Run("cancelled during window still counts toward MRR", func(t *testing.T) {
		repo := new(MockDashboardRepository)

		cancelledInWindow := subAt(start.AddDate(0, -2, 0), db_models.SubStatusCancelled, 30000)
		midWindow := start.AddDate(0, 0, 15).Unix()
		cancelledInWindow.CancelledAt = &midWindow

		cancelledBefore := subAt(start.AddDate(0, -3, 0), db_models.SubStatusCancelled, 60000)
		beforeWindow := start.AddDate(0, 0, -5).Unix()
		cancelledBefore.CancelledAt = &beforeWindow

		repo.On("FindInWindow", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{cancelledInWindow, cancelledBefore}, nil)
		repo.On("CountByStatus", mock.Anything, db_models.SubStatusActive).Return(int64(0), nil)

		service := NewDashboardService(repo)
		metrics, err := service.GetMetrics(context.Background(), adminAuth(), start, end)

		assert.NoError(t, err)
		if assert.NotNil(t, metrics) {
			// Neither was created in the window.
			assert.Equal(t, int64(0), metrics.NewSubscriptions)
			// Only the one cancelled after the window opened contributes.
			assert.True(t, metrics.MonthlyRecurringRevenue.Equal(decimal.NewFromInt(30000)),
				"got %s", metrics.MonthlyRecurringRevenue)
		}
		repo.AssertExpectations(t)
	})

	t.Run("reactivation in window is counted", func(t *testing.T) {
		repo := new(MockDashboardRepository)

		reactivated := subAt(start.AddDate(0, -1, 0), db_models.SubStatusActive, 40000)
		midWindow := start.AddDate(0, 0, 5).Unix()
		reactivated.ReactivatedAt = &midWindow

		repo.On("FindInWindow", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{reactivated}, nil)
		repo.On("CountByStatus", mock.Anything, db_models.SubStatusActive).Return(int64(1), nil)

		service := NewDashboardService(repo)
		metrics, err := service.GetMetrics(context.Background(), adminAuth(), start, end)

		assert.NoError(t, err)
		if assert.NotNil(t, metrics) {
			assert.Equal(t, int64(1), metrics.Reactivations)
			assert.Equal(t, int64(0), metrics.NewSubscriptions)
		}
		repo.AssertExpectations(t)
	})

	t.Run("swapped range is normalized", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		repo.On("FindInWindow", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{}, nil)
		repo.On("CountByStatus", mock.Anything, db_models.SubStatusActive).Return(int64(0), nil)

		service := NewDashboardService(repo)
		metrics, err := service.GetMetrics(context.Background(), adminAuth(), end, start)

		assert.NoError(t, err)
		if assert.NotNil(t, metrics) {
			assert.Equal(t, start, metrics.Range.Start)
			assert.Equal(t, end, metrics.Range.End)
		}
		repo.AssertExpectations(t)
	})
}

func TestDashboardService_GetChartData(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("non-admin is rejected", func(t *testing.T) {
		repo := new(MockDashboardRepository)
		service := NewDashboardService(repo)

		charts, err := service.GetChartData(context.Background(), testAuth(), start, end)

		assert.ErrorIs(t, err, utils.ErrAdminOnly)
		assert.Nil(t, charts)
	})

	t.Run("zero months still get buckets", func(t *testing.T) {
		repo := new(MockDashboardRepository)

		jan := subAt(time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC), db_models.SubStatusActive, 45000)
		mar := subAt(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), db_models.SubStatusActive, 30000)

		repo.On("FindCreatedBetween", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{jan, mar}, nil)
		repo.On("StatusCounts", mock.Anything).Return([]repositories.StatusCountRow{}, nil)

		service := NewDashboardService(repo)
		charts, err := service.GetChartData(context.Background(), adminAuth(), start, end)

		assert.NoError(t, err)
		if assert.NotNil(t, charts) && assert.Len(t, charts.Monthly, 3) {
			assert.Equal(t, "Jan", charts.Monthly[0].Name)
			assert.Equal(t, int64(1), charts.Monthly[0].NewSubscriptions)
			assert.True(t, charts.Monthly[0].MRR.Equal(decimal.NewFromInt(45000)))

			// February had no signups but the bucket is still there.
			assert.Equal(t, "Feb", charts.Monthly[1].Name)
			assert.Equal(t, int64(0), charts.Monthly[1].NewSubscriptions)
			assert.True(t, charts.Monthly[1].MRR.Equal(decimal.Zero))

			assert.Equal(t, "Mar", charts.Monthly[2].Name)
			assert.Equal(t, int64(1), charts.Monthly[2].NewSubscriptions)
			assert.True(t, charts.Monthly[2].MRR.Equal(decimal.NewFromInt(30000)))
		}
		repo.AssertExpectations(t)
	})

	t.Run("status distribution is capitalized and order preserved", func(t *testing.T) {
		repo := new(MockDashboardRepository)

		repo.On("FindCreatedBetween", mock.Anything, start.Unix(), end.Unix()).
			Return([]db_models.Subscription{}, nil)
		repo.On("StatusCounts", mock.Anything).Return([]repositories.StatusCountRow{
			{Status: "active", Count: 5},
			{Status: "cancelled", Count: 2},
			{Status: "paused", Count: 1},
		}, nil)

		service := NewDashboardService(repo)
		charts, err := service.GetChartData(context.Background(), adminAuth(), start, end)

		assert.NoError(t, err)
		if assert.NotNil(t, charts) && assert.Len(t, charts.Status, 3) {
			assert.Equal(t, "Active", charts.Status[0].Name)
			assert.Equal(t, int64(5), charts.Status[0].Value)
			assert.Equal(t, "Cancelled", charts.Status[1].Name)
			assert.Equal(t, "Paused", charts.Status[2].Name)
		}
		repo.AssertExpectations(t)
	})
}
