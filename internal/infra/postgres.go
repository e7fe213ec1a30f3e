package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"seacatering/internal/models/db_models"
)

// InitPostgresql opens the connection pool. The handle is constructed once
// at process start and injected; there is no package-level singleton.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

func ClosePostgresql(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	log.Println("PostgreSQL database connection closed")
	return nil
}

// Migrate keeps the schema in step with the models, join tables included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.MealPlan{},
		&db_models.MealType{},
		&db_models.DeliveryDay{},
		&db_models.Subscription{},
		&db_models.Testimonial{},
	)
}
