package request_models

type CreateSubscriptionRequest struct {
	FullName         string   `json:"fullName"`
	Phone            string   `json:"phone"`
	PlanName         string   `json:"planName"`
	MealTypeNames    []string `json:"mealTypeNames"`
	DeliveryDayNames []string `json:"deliveryDayNames"`
	Allergies        *string  `json:"allergies,omitempty"`
	// Client-side preview of the total; the service recomputes and rejects
	// on disagreement to guard against tampering.
	TotalPrice float64 `json:"totalPrice"`
}

type PauseSubscriptionRequest struct {
	StartDate string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" binding:"required"`   // YYYY-MM-DD
}
