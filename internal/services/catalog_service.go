package services

import (
	"context"

	"seacatering/internal/models/response_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

type CatalogServiceInterface interface {
	GetMealPlans(ctx context.Context) ([]response_models.MealPlanResponse, error)
	GetMealTypes(ctx context.Context) ([]response_models.CatalogItemResponse, error)
	GetDeliveryDays(ctx context.Context) ([]response_models.CatalogItemResponse, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) GetMealPlans(ctx context.Context) ([]response_models.MealPlanResponse, error) {
	plans, err := s.catalogRepo.ListMealPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MealPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, response_models.MealPlanResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			ImageUrl:    p.ImageUrl,
		})
	}
	return out, nil
}

func (s *CatalogService) GetMealTypes(ctx context.Context) ([]response_models.CatalogItemResponse, error) {
	types, err := s.catalogRepo.ListMealTypes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CatalogItemResponse, 0, len(types))
	for _, t := range types {
		out = append(out, response_models.CatalogItemResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (s *CatalogService) GetDeliveryDays(ctx context.Context) ([]response_models.CatalogItemResponse, error) {
	days, err := s.catalogRepo.ListDeliveryDays(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CatalogItemResponse, 0, len(days))
	for _, d := range days {
		out = append(out, response_models.CatalogItemResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}
