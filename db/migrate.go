package db

import (
	"log"

	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"gorm.io/gorm"
)

// Migrate applies the schema and seed data to the connected database. Init
// must have run first.
func Migrate() {
	if err := AutoMigrateAll(DB); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedPaymentMethods(DB)

	log.Println("✅ Migrations applied successfully!")
}

// AutoMigrateAll migrates every model; tests reuse it against sqlite.
func AutoMigrateAll(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Account{},
		&models.Service{},
		&models.Therapist{},
		&models.Slot{},
		&models.Shift{},
		&models.Appointment{},
		&models.PaymentMethod{},
		&models.Transaction{},
		&models.Feedback{},
		&models.Blog{},
		&models.Question{},
		&models.Scoreband{},
		&models.Roadmap{},
		&models.UserQuiz{},
	)
}

// SeedPaymentMethods inserts the default payment methods if they are missing.
func SeedPaymentMethods(database *gorm.DB) {
	methods := []models.PaymentMethod{
		{Name: "cash", IsActive: true},
		{Name: "credit_card", IsActive: true},
		{Name: "bank_transfer", IsActive: true},
	}

	for _, method := range methods {
		var existing models.PaymentMethod
		if database.Where("name = ?", method.Name).First(&existing).RowsAffected == 0 {
			database.Create(&method)
		}
	}
}
