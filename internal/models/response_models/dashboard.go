package response_models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DashboardMetrics struct {
	Range TimeRange `json:"range"`

	// Windowed counters.
	NewSubscriptions int64 `json:"new_subscriptions"`
	Reactivations    int64 `json:"reactivations"`

	// Approximate MRR: totalPrice summed over subscriptions active during
	// the window, plus cancelled ones whose cancellation falls after the
	// window start. Not revenue-recognition accounting.
	MonthlyRecurringRevenue decimal.Decimal `json:"monthly_recurring_revenue"`

	// Current snapshot, intentionally not scoped to the window.
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}

type MonthlyBucket struct {
	Name             string          `json:"name"` // short month label, e.g. "Jan"
	NewSubscriptions int64           `json:"new_subscriptions"`
	MRR              decimal.Decimal `json:"mrr"`
}

type StatusSlice struct {
	Name  string `json:"name"` // capitalized status label
	Value int64  `json:"value"`
}

type DashboardCharts struct {
	Range   TimeRange       `json:"range"`
	Monthly []MonthlyBucket `json:"monthly"`
	Status  []StatusSlice   `json:"status"`
}
