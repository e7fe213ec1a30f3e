package db_models

type MealPlan struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Price       int64  `gorm:"not null"` // per-meal price in whole currency units (IDR)
	Description string `gorm:"type:text"`
	ImageUrl    *string
}

type MealType struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"` // Breakfast | Lunch | Dinner
}

type DeliveryDay struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"` // Monday .. Sunday
}
