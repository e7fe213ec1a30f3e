package db_models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	FullName     string   `gorm:"not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(16);default:'user'"`

	Subscriptions []Subscription `gorm:"foreignKey:UserID"`
	Testimonials  []Testimonial  `gorm:"foreignKey:UserID"`
}
