package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	dbm "seacatering/internal/models/db_models"
	resp "seacatering/internal/models/response_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

type DashboardService interface {
	GetMetrics(ctx context.Context, auth utils.AuthContext, start, end time.Time) (*resp.DashboardMetrics, error)
	GetChartData(ctx context.Context, auth utils.AuthContext, start, end time.Time) (*resp.DashboardCharts, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func normalizeRange(start, end time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end
}

func inWindow(sec int64, start, end int64) bool {
	return sec >= start && sec <= end
}

func (s *dashboardService) GetMetrics(ctx context.Context, auth utils.AuthContext, start, end time.Time) (*resp.DashboardMetrics, error) {
	if !auth.IsAdmin() {
		return nil, utils.ErrAdminOnly
	}
	start, end = normalizeRange(start, end)
	startSec, endSec := start.Unix(), end.Unix()

	subs, err := s.repo.FindInWindow(ctx, startSec, endSec)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var newSubscriptions, reactivations int64
	mrr := decimal.Zero
	for i := range subs {
		sub := &subs[i]

		if inWindow(sub.CreatedAt, startSec, endSec) {
			newSubscriptions++
		}

		// A subscription contributes to MRR if it is currently active, or if
		// it was cancelled after the window opened (it still earned revenue
		// for part of the window). Point-in-time approximation, not revenue
		// recognition.
		wasActiveDuringPeriod := sub.Status == dbm.SubStatusActive ||
			(sub.Status == dbm.SubStatusCancelled && sub.CancelledAt != nil && *sub.CancelledAt >= startSec)
		if wasActiveDuringPeriod {
			mrr = mrr.Add(sub.TotalPrice)
		}

		if sub.ReactivatedAt != nil && inWindow(*sub.ReactivatedAt, startSec, endSec) {
			reactivations++
		}
	}

	// Current snapshot on purpose, not scoped to the window.
	active, err := s.repo.CountByStatus(ctx, dbm.SubStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.DashboardMetrics{
		Range:                   resp.TimeRange{Start: start, End: end},
		NewSubscriptions:        newSubscriptions,
		Reactivations:           reactivations,
		MonthlyRecurringRevenue: mrr,
		ActiveSubscriptions:     active,
	}, nil
}

func (s *dashboardService) GetChartData(ctx context.Context, auth utils.AuthContext, start, end time.Time) (*resp.DashboardCharts, error) {
	if !auth.IsAdmin() {
		return nil, utils.ErrAdminOnly
	}
	start, end = normalizeRange(start, end)

	subs, err := s.repo.FindCreatedBetween(ctx, start.Unix(), end.Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Every calendar month in the range gets a bucket, zero-valued months
	// included, so charts keep a continuous axis.
	months := utils.MonthsInRange(start.UTC(), end.UTC())
	buckets := make(map[time.Time]*resp.MonthlyBucket, len(months))
	monthly := make([]resp.MonthlyBucket, len(months))
	for i, m := range months {
		monthly[i] = resp.MonthlyBucket{Name: m.Format("Jan"), MRR: decimal.Zero}
		buckets[m] = &monthly[i]
	}

	for i := range subs {
		sub := &subs[i]
		key := utils.MonthStart(time.Unix(sub.CreatedAt, 0).UTC())
		if b, ok := buckets[key]; ok {
			b.NewSubscriptions++
			b.MRR = b.MRR.Add(sub.TotalPrice)
		}
	}

	rows, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	status := make([]resp.StatusSlice, 0, len(rows))
	for _, row := range rows {
		status = append(status, resp.StatusSlice{
			Name:  capitalizeStatus(row.Status),
			Value: row.Count,
		})
	}

	return &resp.DashboardCharts{
		Range:   resp.TimeRange{Start: start, End: end},
		Monthly: monthly,
		Status:  status,
	}, nil
}

func capitalizeStatus(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
