package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "seacatering/internal/models/db_models"
)

type DashboardRepository interface {
	// FindInWindow fetches the candidate rows for the windowed metrics with
	// one broad filter; the counters are computed in a single pass upstream.
	FindInWindow(ctx context.Context, start, end int64) ([]dbm.Subscription, error)

	FindCreatedBetween(ctx context.Context, start, end int64) ([]dbm.Subscription, error)

	CountByStatus(ctx context.Context, status dbm.SubscriptionStatus) (int64, error)
	StatusCounts(ctx context.Context) ([]StatusCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

func (r *dashboardRepository) FindInWindow(ctx context.Context, start, end int64) ([]dbm.Subscription, error) {
	var subs []dbm.Subscription
	err := r.db.WithContext(ctx).
		Where(
			r.db.Where("created_at BETWEEN ? AND ?", start, end).
				Or("status IN ? AND created_at <= ?", []dbm.SubscriptionStatus{dbm.SubStatusActive, dbm.SubStatusPaused}, end).
				Or("cancelled_at BETWEEN ? AND ?", start, end).
				Or("reactivated_at BETWEEN ? AND ?", start, end),
		).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *dashboardRepository) FindCreatedBetween(ctx context.Context, start, end int64) ([]dbm.Subscription, error) {
	var subs []dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *dashboardRepository) CountByStatus(ctx context.Context, status dbm.SubscriptionStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) StatusCounts(ctx context.Context) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
