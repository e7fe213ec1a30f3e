package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"not null"` // display name copied from the author's profile
	Message   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
