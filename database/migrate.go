package database

import (
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the four application tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.Review{},
	)
	if err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
