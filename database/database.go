package database

import (
	"fmt"
	"log"

	config "github.com/mobauto/workshop-backend/configs"
	"github.com/mobauto/workshop-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Service{},
		&models.ServiceFAQ{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.BusinessConfigRow{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// At most one non-cancelled appointment per slot. This index is the
	// real double-booking guard; the engine's pre-check only gives the
	// client a friendlier error.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
		ON appointments (scheduled_date, scheduled_time)
		WHERE status <> 'CANCELLED'`).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create slot uniqueness index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         "ADMIN",
		FirstName:    config.Config("ADMIN_FIRST_NAME"),
		LastName:     config.Config("ADMIN_LAST_NAME"),
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
