package response_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MealPlanSummary struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	ImageUrl    *string `json:"imageUrl"`
}

type SubscriptionResponse struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"fullName"`
	Phone           string          `json:"phone"`
	Allergies       *string         `json:"allergies,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	PausedStartDate *string         `json:"pausedStartDate"`
	PausedEndDate   *string         `json:"pausedEndDate"`
	CancelledAt     *string         `json:"cancelledAt"`
	ReactivatedAt   *string         `json:"reactivatedAt"`
	MealPlan        MealPlanSummary `json:"mealPlan"`
	MealTypes       []string        `json:"mealTypes"`
	DeliveryDays    []string        `json:"deliveryDays"`
}
