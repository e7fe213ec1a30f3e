package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusPaused    SubscriptionStatus = "paused"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	FullName   string    `gorm:"not null"`
	Phone      string    `gorm:"not null"`
	MealPlanID uuid.UUID `gorm:"type:uuid;index;not null"`
	Allergies  *string

	// plan price x meal types x delivery days x 4.3 (weeks per month), 2dp
	TotalPrice decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Status     SubscriptionStatus `gorm:"type:varchar(16);index;default:'active'"`

	// Unix seconds; pause dates are set only while status is paused.
	PausedStartDate *int64
	PausedEndDate   *int64
	CancelledAt     *int64
	ReactivatedAt   *int64

	MealPlan     MealPlan      `gorm:"foreignKey:MealPlanID"`
	MealTypes    []MealType    `gorm:"many2many:subscription_meal_types"`
	DeliveryDays []DeliveryDay `gorm:"many2many:subscription_delivery_days"`
}
