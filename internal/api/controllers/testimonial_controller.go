package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"seacatering/internal/models/request_models"
	"seacatering/internal/services"
	"seacatering/pkg/utils"
)

type TestimonialController struct {
	testimonialService services.TestimonialServiceInterface
}

func NewTestimonialController(testimonialService services.TestimonialServiceInterface) *TestimonialController {
	return &TestimonialController{testimonialService: testimonialService}
}

// AddTestimonial godoc
// @Summary Add a testimonial
// @Description Submit a review and rating; the display name comes from the caller's profile
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body request_models.AddTestimonialRequest true "Testimonial payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /testimonials [post]
func (t *TestimonialController) AddTestimonial(c *gin.Context) {
	auth, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
		return
	}

	var req request_models.AddTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.testimonialService.AddTestimonial(c.Request.Context(), auth, req.Message, req.Rating); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Thank you! Your testimonial has been submitted")
}

// ListTestimonials godoc
// @Summary List testimonials
// @Description The ten most recent testimonials, newest first
// @Tags Testimonials
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /testimonials [get]
func (t *TestimonialController) ListTestimonials(c *gin.Context) {
	testimonials, err := t.testimonialService.GetTestimonials(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, testimonials, "Testimonials fetched successfully")
}
