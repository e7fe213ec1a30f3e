package repositories

import (
	"context"

	"gorm.io/gorm"
	"seacatering/internal/models/db_models"
)

type TestimonialRepositoryInterface interface {
	CreateTestimonial(ctx context.Context, testimonial *db_models.Testimonial) error
	ListLatest(ctx context.Context, limit int) ([]db_models.Testimonial, error)
}

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) CreateTestimonial(ctx context.Context, testimonial *db_models.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *TestimonialRepository) ListLatest(ctx context.Context, limit int) ([]db_models.Testimonial, error) {
	var testimonials []db_models.Testimonial
	err := r.db.WithContext(ctx).
		Limit(limit).
		Order("created_at DESC").
		Find(&testimonials).Error
	return testimonials, err
}
