package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"seacatering/internal/models/db_models"
)

// CatalogRepository reads the static reference tables used to validate and
// price subscriptions.
type CatalogRepository interface {
	ListMealPlans(ctx context.Context) ([]db_models.MealPlan, error)
	ListMealTypes(ctx context.Context) ([]db_models.MealType, error)
	ListDeliveryDays(ctx context.Context) ([]db_models.DeliveryDay, error)

	FindMealPlanByName(ctx context.Context, name string) (*db_models.MealPlan, error)
	FindMealTypesByNames(ctx context.Context, names []string) ([]db_models.MealType, error)
	FindDeliveryDaysByNames(ctx context.Context, names []string) ([]db_models.DeliveryDay, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListMealPlans(ctx context.Context) ([]db_models.MealPlan, error) {
	var plans []db_models.MealPlan
	err := r.db.WithContext(ctx).Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *catalogRepository) ListMealTypes(ctx context.Context) ([]db_models.MealType, error) {
	var types []db_models.MealType
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&types).Error
	return types, err
}

func (r *catalogRepository) ListDeliveryDays(ctx context.Context) ([]db_models.DeliveryDay, error) {
	var days []db_models.DeliveryDay
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&days).Error
	return days, err
}

func (r *catalogRepository) FindMealPlanByName(ctx context.Context, name string) (*db_models.MealPlan, error) {
	var plan db_models.MealPlan
	err := r.db.WithContext(ctx).First(&plan, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *catalogRepository) FindMealTypesByNames(ctx context.Context, names []string) ([]db_models.MealType, error) {
	var types []db_models.MealType
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&types).Error
	return types, err
}

func (r *catalogRepository) FindDeliveryDaysByNames(ctx context.Context, names []string) ([]db_models.DeliveryDay, error) {
	var days []db_models.DeliveryDay
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&days).Error
	return days, err
}
