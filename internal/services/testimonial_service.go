package services

import (
	"context"
	"strings"

	"seacatering/internal/models/db_models"
	"seacatering/internal/models/response_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

const testimonialListLimit = 10

type TestimonialServiceInterface interface {
	AddTestimonial(ctx context.Context, auth utils.AuthContext, message string, rating int) error
	GetTestimonials(ctx context.Context) ([]response_models.TestimonialResponse, error)
}

type TestimonialService struct {
	testimonialRepo repositories.TestimonialRepositoryInterface
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepositoryInterface) TestimonialServiceInterface {
	return &TestimonialService{testimonialRepo: testimonialRepo}
}

func (s *TestimonialService) AddTestimonial(ctx context.Context, auth utils.AuthContext, message string, rating int) error {
	// The display name comes from the caller's profile, never the payload.
	name := strings.TrimSpace(auth.FullName)
	if name == "" {
		return utils.ErrMissingProfileName
	}
	if strings.TrimSpace(message) == "" {
		return utils.ErrEmptyReviewMessage
	}
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}

	testimonial := &db_models.Testimonial{
		UserID:  auth.UserID,
		Name:    name,
		Message: strings.TrimSpace(message),
		Rating:  rating,
	}
	if err := s.testimonialRepo.CreateTestimonial(ctx, testimonial); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TestimonialService) GetTestimonials(ctx context.Context) ([]response_models.TestimonialResponse, error) {
	testimonials, err := s.testimonialRepo.ListLatest(ctx, testimonialListLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, response_models.TestimonialResponse{
			ID:        t.ID,
			Name:      t.Name,
			Message:   t.Message,
			Rating:    t.Rating,
			CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}
