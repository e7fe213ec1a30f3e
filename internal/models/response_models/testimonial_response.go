package response_models

import (
	"time"

	"github.com/google/uuid"
)

type TestimonialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
