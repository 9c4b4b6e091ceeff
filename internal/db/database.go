package db

import (
	"fmt"
	"log"

	"github.com/quickhire/quickhire-api/internal/config"
	"github.com/quickhire/quickhire-api/internal/domain/application"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs schema migrations for all persisted entities.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&job.Job{}, &application.Application{})
}

// InitWithGormDB swaps in an externally constructed connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
