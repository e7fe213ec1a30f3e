package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"seacatering/internal/config"
	"seacatering/internal/infra"
	"seacatering/internal/models/db_models"
)

func strPtr(s string) *string { return &s }

var mealPlans = []db_models.MealPlan{
	{
		Name:        "Paket Diet Rendah Kalori",
		Price:       30000,
		Description: "Menu seimbang dengan protein, karbohidrat, dan sayuran segar untuk kebutuhan harian Anda",
		ImageUrl:    strPtr("https://res.cloudinary.com/dsw1iot8d/image/upload/v1750837055/d801bbd7-eabf-483a-b4b4-6df6d53ffe92_rrtekw.jpg"),
	},
	{
		Name:        "Paket Protein Maksimal",
		Price:       40000,
		Description: "Untuk pembentukan otot, terdiri dari daging sapi panggang, telur rebus, dan quinoa",
		ImageUrl:    strPtr("https://res.cloudinary.com/dsw1iot8d/image/upload/v1750837607/5f530d13-9f24-4a3a-913f-4b37ff9b3558_oc2nha.jpg"),
	},
	{
		Name:        "Paket Royal Premium",
		Price:       60000,
		Description: "Pilihan terbaik dengan bahan premium: salmon, asparagus, dan salad buah eksotis",
		ImageUrl:    strPtr("https://res.cloudinary.com/dsw1iot8d/image/upload/v1750837688/97fa17bb-2ad6-4b92-a216-aed9fd38acd6_cwbikv.jpg"),
	},
	{
		Name:        "Paket Sehat Harian",
		Price:       45000,
		Description: "Menu seimbang dengan protein, karbohidrat, dan sayuran segar untuk kebutuhan harian Anda",
		ImageUrl:    strPtr("https://res.cloudinary.com/dsw1iot8d/image/upload/v1750837507/a0e31ba7-bfb6-41cc-ba73-a087e1b1e089_wybtsk.jpg"),
	},
}

var mealTypes = []string{"Breakfast", "Lunch", "Dinner"}

var deliveryDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := infra.ClosePostgresql(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Println("Catalog seeded successfully")
}

// seedCatalog upserts by name so the script can run any number of times.
func seedCatalog(db *gorm.DB) error {
	for _, plan := range mealPlans {
		if err := db.Where(db_models.MealPlan{Name: plan.Name}).
			Attrs(plan).
			FirstOrCreate(&db_models.MealPlan{}).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d meal plans", len(mealPlans))

	for _, name := range mealTypes {
		if err := db.Where(db_models.MealType{Name: name}).
			FirstOrCreate(&db_models.MealType{}).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d meal types", len(mealTypes))

	for _, name := range deliveryDays {
		if err := db.Where(db_models.DeliveryDay{Name: name}).
			FirstOrCreate(&db_models.DeliveryDay{}).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d delivery days", len(deliveryDays))

	return nil
}
