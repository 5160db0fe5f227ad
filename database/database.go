package database

import (
	"fmt"
	"log"
	"time"

	config "github.com/kamausoft/health_connect/configs"
	"github.com/kamausoft/health_connect/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Admin{},
		&models.Department{},
		&models.Appointment{},
		&models.Billing{},
		&models.Medication{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// Partial unique index: at most one non-cancelled appointment per
	// doctor/date/time. The booking handler treats a violation of this
	// index as "slot already booked".
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
		ON appointments (doctor_id, appointment_date, appointment_time)
		WHERE status <> 'CANCELLED'`).Error
	if err != nil {
		log.Fatalf("🔥 Failed to create appointment slot index: %v", err)
	}

	fmt.Println("✅ Database migration successful")
}

func SeedData() {
	seedDepartments()
	seedAdmin()
	seedSampleStaff()
	seedMedications()
}

func seedDepartments() {
	var count int64
	if err := DB.Model(&models.Department{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check departments: %v", err)
	}
	if count > 0 {
		return
	}

	departments := []models.Department{
		{Name: "Cardiology", Description: "Heart and cardiovascular system", Location: "Building A, Floor 2", PhoneNumber: "+1-555-0101"},
		{Name: "Orthopedics", Description: "Bone and joint care", Location: "Building B, Floor 1", PhoneNumber: "+1-555-0102"},
		{Name: "Pediatrics", Description: "Children healthcare", Location: "Building C, Floor 1", PhoneNumber: "+1-555-0103"},
	}
	if err := DB.Create(&departments).Error; err != nil {
		log.Fatalf("🔥 Failed to seed departments: %v", err)
	}
	log.Println("✅ Departments seeded successfully")
}

func seedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		adminUser := models.User{
			Email:    adminEmail,
			Password: string(hashedPassword),
			Role:     models.RoleAdmin,
		}
		if err := tx.Create(&adminUser).Error; err != nil {
			return err
		}
		profile := models.Admin{
			UserID:      adminUser.ID,
			FirstName:   "System",
			LastName:    "Administrator",
			PhoneNumber: "+1-555-0001",
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}

func seedSampleStaff() {
	if config.Config("SEED_SAMPLE_DATA") != "true" {
		return
	}

	var count int64
	if err := DB.Model(&models.Doctor{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check doctors: %v", err)
	}
	if count > 0 {
		return
	}

	var cardiology models.Department
	if err := DB.Where("name = ?", "Cardiology").First(&cardiology).Error; err != nil {
		log.Printf("⚠️ Cardiology department missing, skipping sample staff seed")
		return
	}

	doctorPassword, _ := bcrypt.GenerateFromPassword([]byte("doctor123"), bcrypt.DefaultCost)
	patientPassword, _ := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)

	err := DB.Transaction(func(tx *gorm.DB) error {
		doctorUser := models.User{Email: "dr.smith@healthcare.com", Password: string(doctorPassword), Role: models.RoleDoctor}
		if err := tx.Create(&doctorUser).Error; err != nil {
			return err
		}
		doctor := models.Doctor{
			UserID:          doctorUser.ID,
			FirstName:       "John",
			LastName:        "Smith",
			Specialization:  "Cardiologist",
			LicenseNumber:   "MD123456",
			PhoneNumber:     "+1-555-1001",
			Experience:      10,
			ConsultationFee: 150.00,
			DepartmentID:    cardiology.ID,
		}
		if err := tx.Create(&doctor).Error; err != nil {
			return err
		}

		patientUser := models.User{Email: "jane.doe@email.com", Password: string(patientPassword), Role: models.RolePatient}
		if err := tx.Create(&patientUser).Error; err != nil {
			return err
		}
		bloodType := "O_POSITIVE"
		allergies := "Peanuts, Shellfish"
		patient := models.Patient{
			UserID:           patientUser.ID,
			FirstName:        "Jane",
			LastName:         "Doe",
			DateOfBirth:      time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			Gender:           "FEMALE",
			PhoneNumber:      "+1-555-2001",
			Address:          "123 Main Street",
			City:             "New York",
			BloodType:        &bloodType,
			Allergies:        &allergies,
			EmergencyContact: "+1-555-2002",
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed sample staff: %v", err)
	}

	log.Println("✅ Sample doctor and patient seeded successfully")
}

func seedMedications() {
	var count int64
	if err := DB.Model(&models.Medication{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check medications: %v", err)
	}
	if count > 0 {
		return
	}

	medications := []models.Medication{
		{Name: "Paracetamol", GenericName: "Acetaminophen", DosageForm: "tablet", Strength: "500mg", Price: 5.99},
		{Name: "Amoxicillin", GenericName: "Amoxicillin", DosageForm: "capsule", Strength: "250mg", Price: 12.50},
		{Name: "Ibuprofen", GenericName: "Ibuprofen", DosageForm: "tablet", Strength: "400mg", Price: 8.75},
	}
	if err := DB.Create(&medications).Error; err != nil {
		log.Fatalf("🔥 Failed to seed medications: %v", err)
	}
	log.Println("✅ Medication catalog seeded successfully")
}
