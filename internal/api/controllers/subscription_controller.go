package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seacatering/internal/models/request_models"
	"seacatering/internal/services"
	"seacatering/pkg/utils"
)

const pauseDateLayout = "2006-01-02"

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// Create godoc
// @Summary Create a subscription
// @Description Create a recurring meal subscription for the authenticated customer
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (s *SubscriptionController) Create(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription created successfully")
}

// List godoc
// @Summary List own subscriptions
// @Description Active and paused subscriptions of the authenticated customer, newest first
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (s *SubscriptionController) List(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	subs, err := s.subscriptionService.ListSubscriptions(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

// Pause godoc
// @Summary Pause a subscription
// @Description Pause an active subscription for a date range
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body request_models.PauseSubscriptionRequest true "Pause date range (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/pause [put]
func (s *SubscriptionController) Pause(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	var req request_models.PauseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	startDate, err := time.ParseInLocation(pauseDateLayout, req.StartDate, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}
	endDate, err := time.ParseInLocation(pauseDateLayout, req.EndDate, time.Local)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return
	}

	if err := s.subscriptionService.PauseSubscription(c.Request.Context(), auth, id, startDate, endDate); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription paused successfully")
}

// Cancel godoc
// @Summary Cancel a subscription
// @Description Cancel a subscription; the row is kept and flagged, never deleted
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/cancel [put]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	if err := s.subscriptionService.CancelSubscription(c.Request.Context(), auth, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription cancelled successfully")
}

// Resume godoc
// @Summary Resume a paused subscription
// @Description Reactivate a paused subscription and clear its pause dates
// @Tags Subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/resume [put]
func (s *SubscriptionController) Resume(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	if err := s.subscriptionService.ResumeSubscription(c.Request.Context(), auth, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription resumed successfully")
}
