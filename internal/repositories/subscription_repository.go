package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seacatering/internal/models/db_models"
)

type SubscriptionRepository interface {
	// CreateWithSelections persists the subscription row together with its
	// meal-type and delivery-day join rows in a single transaction; a failure
	// anywhere leaves nothing behind.
	CreateWithSelections(ctx context.Context, sub *db_models.Subscription) error

	FindOwned(ctx context.Context, id, userID uuid.UUID) (*db_models.Subscription, error)
	FindOwnedDetailed(ctx context.Context, id, userID uuid.UUID) (*db_models.Subscription, error)

	// UpdateOwned applies fields to the row matching both id and owner and
	// reports how many rows matched. The owner scoping doubles as the
	// authorization check.
	UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}) (int64, error)

	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateWithSelections(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit the catalog rows themselves so only the join rows are written.
		return tx.Omit("MealPlan", "MealTypes.*", "DeliveryDays.*").Create(sub).Error
	})
}

func (r *subscriptionRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		First(&sub, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindOwnedDetailed(ctx context.Context, id, userID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("MealPlan").
		Preload("MealTypes").
		Preload("DeliveryDays").
		First(&sub, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("MealPlan").
		Preload("MealTypes").
		Preload("DeliveryDays").
		Where("user_id = ?", userID).
		Where("status IN ?", []db_models.SubscriptionStatus{
			db_models.SubStatusActive,
			db_models.SubStatusPaused,
		}).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
