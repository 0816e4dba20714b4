package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/domain"
)

// AutoMigrate runs schema migration for all models. Parents migrate
// before children so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Pet{},
		&domain.MedicalRecord{},
		&domain.Reminder{},
		&domain.PetDocument{},
		&domain.Partner{},
		&domain.ProductOrService{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}
