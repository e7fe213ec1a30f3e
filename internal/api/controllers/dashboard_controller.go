package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"seacatering/internal/services"
	"seacatering/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// parseRange reads start/end (RFC3339) or last_days, defaulting to the last
// 30 days. The two forms are mutually exclusive.
func parseRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	lastDaysStr := c.Query("last_days")

	if lastDaysStr != "" && (startStr != "" || endStr != "") {
		utils.RespondError(c, http.StatusBadRequest, "provide either last_days or start/end (not both)")
		return
	}

	switch {
	case lastDaysStr != "":
		d, convErr := strconv.Atoi(lastDaysStr)
		if convErr != nil || d <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "last_days must be a positive integer")
			return
		}
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -d)

	default:
		var err error
		if startStr != "" {
			start, err = time.Parse(time.RFC3339, startStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "start must be RFC3339 (e.g. 2026-08-01T00:00:00Z)")
				return
			}
		}
		if endStr != "" {
			end, err = time.Parse(time.RFC3339, endStr)
			if err != nil {
				utils.RespondError(c, http.StatusBadRequest, "end must be RFC3339 (e.g. 2026-08-30T23:59:59Z)")
				return
			}
		}
		if end.IsZero() {
			end = time.Now().UTC()
		}
		if start.IsZero() {
			start = end.AddDate(0, 0, -30)
		}
	}

	if start.After(end) {
		start, end = end, start
	}
	return start, end, true
}

// GetMetrics godoc
// @Summary Business metrics
// @Description New subscriptions, MRR, reactivations and the current active count for a date range
// @Tags Dashboard
// @Produce json
// @Param start     query string false "RFC3339 start"
// @Param end       query string false "RFC3339 end"
// @Param last_days query int    false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (d *DashboardController) GetMetrics(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	metrics, err := d.dashboardService.GetMetrics(c.Request.Context(), auth, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, metrics, "Dashboard metrics fetched successfully")
}

// GetCharts godoc
// @Summary Chart data
// @Description Monthly new-subscription/MRR series and the status distribution
// @Tags Dashboard
// @Produce json
// @Param start     query string false "RFC3339 start"
// @Param end       query string false "RFC3339 end"
// @Param last_days query int    false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/charts [get]
func (d *DashboardController) GetCharts(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	charts, err := d.dashboardService.GetChartData(c.Request.Context(), auth, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, charts, "Dashboard chart data fetched successfully")
}
