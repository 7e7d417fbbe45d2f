package initializers

import (
	"log"

	"github.com/hineshmeraka/epharmacy-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.CheckoutIntent{},
		&models.Prescription{},
	)
	log.Println("Database synced successfully.")
}
