package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/kamausoft/health_connect/configs"
	"github.com/kamausoft/health_connect/database"
	"github.com/kamausoft/health_connect/models"
	"github.com/kamausoft/health_connect/notifications"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=PATIENT DOCTOR ADMIN"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`

	PhoneNumber string `json:"phone_number,omitempty"`

	// Patient fields
	DateOfBirth      string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`

	// Doctor fields
	Specialization  string  `json:"specialization,omitempty"`
	LicenseNumber   string  `json:"license_number,omitempty"`
	Experience      int     `json:"experience,omitempty"`
	ConsultationFee float64 `json:"consultation_fee,omitempty"`
	DepartmentID    string  `json:"department_id,omitempty" validate:"omitempty,uuid"`
}

func Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var newUser models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		newUser = models.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			Role:     req.Role,
			IsActive: true,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("user already exists")
			}
			return err
		}

		switch req.Role {
		case models.RolePatient:
			if req.DateOfBirth == "" || req.Gender == "" || req.Address == "" || req.City == "" || req.EmergencyContact == "" {
				return errors.New("missing required patient fields")
			}
			dob, err := time.Parse("2006-01-02", req.DateOfBirth)
			if err != nil {
				return errors.New("invalid date of birth")
			}
			patient := models.Patient{
				UserID:           newUser.ID,
				FirstName:        req.FirstName,
				LastName:         req.LastName,
				DateOfBirth:      dob,
				Gender:           req.Gender,
				PhoneNumber:      req.PhoneNumber,
				Address:          req.Address,
				City:             req.City,
				EmergencyContact: req.EmergencyContact,
			}
			return tx.Create(&patient).Error

		case models.RoleDoctor:
			if req.Specialization == "" || req.LicenseNumber == "" || req.Experience == 0 || req.ConsultationFee == 0 || req.DepartmentID == "" {
				return errors.New("missing required doctor fields")
			}

			var existingDoctor models.Doctor
			if err := tx.Where("license_number = ?", req.LicenseNumber).First(&existingDoctor).Error; err == nil {
				return errors.New("license number already exists")
			}

			var department models.Department
			if err := tx.Where("id = ?", req.DepartmentID).First(&department).Error; err != nil {
				return errors.New("department not found")
			}

			doctor := models.Doctor{
				UserID:          newUser.ID,
				FirstName:       req.FirstName,
				LastName:        req.LastName,
				Specialization:  req.Specialization,
				LicenseNumber:   req.LicenseNumber,
				PhoneNumber:     req.PhoneNumber,
				Experience:      req.Experience,
				ConsultationFee: req.ConsultationFee,
				DepartmentID:    department.ID,
			}
			return tx.Create(&doctor).Error

		case models.RoleAdmin:
			admin := models.Admin{
				UserID:      newUser.ID,
				FirstName:   req.FirstName,
				LastName:    req.LastName,
				PhoneNumber: req.PhoneNumber,
			}
			return tx.Create(&admin).Error
		}

		return errors.New("invalid role")
	})

	if err != nil {
		switch err.Error() {
		case "user already exists":
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User already exists"})
		case "department not found":
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
		case "missing required patient fields", "missing required doctor fields",
			"license number already exists", "invalid date of birth", "invalid role":
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	go notifications.SendEmail(req.FirstName+" "+req.LastName, newUser.Email, "Welcome to Health Connect!",
		"<h1>Welcome!</h1><p>Your account has been created. You can now sign in and manage your care.</p>")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user": fiber.Map{
			"id":    newUser.ID,
			"email": newUser.Email,
			"role":  newUser.Role,
		},
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is disabled"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	profileID, firstName, lastName := lookupProfile(&user)

	claims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"role":       user.Role,
		"profile_id": profileID,
		"exp":        time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"user": fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"role":       user.Role,
			"profile_id": profileID,
			"first_name": firstName,
			"last_name":  lastName,
		},
	})
}

// lookupProfile fetches the role profile behind a user so the token and
// login response can carry denormalized identity fields.
func lookupProfile(user *models.User) (profileID uuid.UUID, firstName, lastName string) {
	switch user.Role {
	case models.RolePatient:
		var patient models.Patient
		if err := database.DB.Where("user_id = ?", user.ID).First(&patient).Error; err == nil {
			return patient.ID, patient.FirstName, patient.LastName
		}
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := database.DB.Where("user_id = ?", user.ID).First(&doctor).Error; err == nil {
			return doctor.ID, doctor.FirstName, doctor.LastName
		}
	case models.RoleAdmin:
		var admin models.Admin
		if err := database.DB.Where("user_id = ?", user.ID).First(&admin).Error; err == nil {
			return admin.ID, admin.FirstName, admin.LastName
		}
	}
	return uuid.Nil, "", ""
}
