package db

import (
	"fmt"
	"log"

	"github.com/agendafacil/backend/models"
)

// Migrate runs AutoMigrate for every model. Called explicitly, never as part
// of Init.
func Migrate() {
	if DB == nil {
		Init()
	}
	err := DB.AutoMigrate(
		&models.Company{},
		&models.Professional{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
