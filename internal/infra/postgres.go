package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := seedReferenceData(db); err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.AgentProfile{},
		&db_models.RenterProfile{},
		&db_models.Neighborhood{},
		&db_models.Property{},
		&db_models.House{},
		&db_models.Apartment{},
		&db_models.Commercial{},
		&db_models.Vacation{},
		&db_models.Land{},
		&db_models.AgentProperty{},
		&db_models.Address{},
		&db_models.Card{},
		&db_models.RewardProgram{},
		&db_models.RewardEnrollment{},
		&db_models.PointRedemption{},
		&db_models.Booking{},
		&db_models.BookingCard{},
	)
}

// seedReferenceData loads the immutable catalogs on first boot: the reward
// program tiers and a starter set of neighborhoods. No-op once rows exist.
func seedReferenceData(db *gorm.DB) error {
	var programCount int64
	if err := db.Model(&db_models.RewardProgram{}).Count(&programCount).Error; err != nil {
		return err
	}
	if programCount == 0 {
		programs := []db_models.RewardProgram{
			{Name: "Silver", PointsPerBooking: 25},
			{Name: "Gold", PointsPerBooking: 50},
			{Name: "Platinum", PointsPerBooking: 100},
		}
		if err := db.Create(&programs).Error; err != nil {
			return err
		}
	}

	var neighborhoodCount int64
	if err := db.Model(&db_models.Neighborhood{}).Count(&neighborhoodCount).Error; err != nil {
		return err
	}
	if neighborhoodCount == 0 {
		neighborhoods := []db_models.Neighborhood{
			{
				Location:      "Downtown",
				Description:   "Dense urban core with walkable amenities",
				CrimeRate:     "Moderate",
				NearbySchools: "Central High, Riverside Elementary",
			},
			{
				Location:      "Maplewood",
				Description:   "Quiet residential streets with mature trees",
				CrimeRate:     "Low",
				NearbySchools: "Maplewood Middle, Oak Grove Elementary",
			},
			{
				Location:      "Harbor District",
				Description:   "Waterfront mixed-use area near the marina",
				CrimeRate:     "Low",
				NearbySchools: "Harborside Academy",
			},
		}
		if err := db.Create(&neighborhoods).Error; err != nil {
			return err
		}
	}

	return nil
}
