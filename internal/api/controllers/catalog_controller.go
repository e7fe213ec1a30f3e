package controllers

import (
	"github.com/gin-gonic/gin"
	"seacatering/internal/services"
	"seacatering/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListMealPlans godoc
// @Summary List meal plans
// @Description Get the meal plan catalog with per-meal prices
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /menu/plans [get]
func (m *CatalogController) ListMealPlans(c *gin.Context) {
	plans, err := m.catalogService.GetMealPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Meal plans fetched successfully")
}

// ListMealTypes godoc
// @Summary List meal types
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /menu/meal-types [get]
func (m *CatalogController) ListMealTypes(c *gin.Context) {
	types, err := m.catalogService.GetMealTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, types, "Meal types fetched successfully")
}

// ListDeliveryDays godoc
// @Summary List delivery days
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /menu/delivery-days [get]
func (m *CatalogController) ListDeliveryDays(c *gin.Context) {
	days, err := m.catalogService.GetDeliveryDays(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, days, "Delivery days fetched successfully")
}
