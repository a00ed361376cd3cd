package migration

import (
	"Pantry-Share-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ProductCard{}); err != nil {
		log.Fatalf("Error migrating product card database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Container{}); err != nil {
		log.Fatalf("Error migrating container database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Image{}); err != nil {
		log.Fatalf("Error migrating image database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
