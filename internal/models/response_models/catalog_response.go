package response_models

import "github.com/google/uuid"

type MealPlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	ImageUrl    *string   `json:"imageUrl"`
}

type CatalogItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
